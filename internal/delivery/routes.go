package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the full HTTP surface with its middleware stack.
func NewRouter(log *logger.ZapLogger, hShowcase *ShowcaseHandler, assetsDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}))

	RegisterRoutes(r, hShowcase, assetsDir)
	return r
}

func RegisterRoutes(r chi.Router, hShowcase *ShowcaseHandler, assetsDir string) {

	// gallery page
	r.Get("/", hShowcase.Page)

	// json
	r.Get("/api", hShowcase.List)
	r.Get("/api/{id}", hShowcase.Get)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// static files next to the page
	if assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	}
}
