package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/showcase/internal/config"
	"github.com/Vovarama1992/showcase/internal/delivery"
	"github.com/Vovarama1992/showcase/internal/infra"
	"github.com/Vovarama1992/showcase/web"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	defer zcore.Sync()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// POSTGRES
	pool, err := infra.NewPgxPool(ctx, cfg.Database)
	if err != nil {
		panic(err.Error())
	}
	defer pool.Close()

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "connection to database successful",
		Fields:  map[string]any{"db": cfg.Database.SafeDSN()},
	})

	// TEMPLATES
	var templates fs.FS = web.Templates()
	if cfg.TemplateDir != "" {
		templates = os.DirFS(cfg.TemplateDir)
	}

	// HANDLERS
	showcaseRepo := infra.NewPostgresShowcaseRepo(pool)
	hShowcase := delivery.NewShowcaseHandler(showcaseRepo, infra.NewTemplateRenderer(templates), zl)

	// ROUTER
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: delivery.NewRouter(zl, hShowcase, cfg.AssetsDir),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "server started",
			Fields: map[string]any{
				"addr":        cfg.ListenAddr,
				"templateDir": cfg.TemplateDir,
				"assetsDir":   cfg.AssetsDir,
			},
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
		return
	}

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server stopped",
	})
}
