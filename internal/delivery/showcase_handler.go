package delivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/showcase/internal/domain"
	"github.com/Vovarama1992/showcase/internal/models"
	"github.com/Vovarama1992/showcase/internal/ports"
	"github.com/go-chi/chi/v5"
)

const indexTemplate = "index.html"

type ShowcaseHandler struct {
	repo   ports.ShowcaseRepository
	render ports.PageRenderer
	log    *logger.ZapLogger
}

func NewShowcaseHandler(repo ports.ShowcaseRepository, render ports.PageRenderer, log *logger.ZapLogger) *ShowcaseHandler {
	return &ShowcaseHandler{
		repo:   repo,
		render: render,
		log:    log,
	}
}

// GET /api
func (h *ShowcaseHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.FetchPublic(r.Context())
	if err != nil {
		h.fail(w, r, "fetch public showcase failed", err)
		return
	}
	if items == nil {
		items = []models.ShowcaseItem{}
	}

	h.writeJSON(w, r, items)
}

// GET /api/{id}
func (h *ShowcaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	item, err := h.repo.FetchByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		h.fail(w, r, "fetch showcase item failed", err)
		return
	}

	h.writeJSON(w, r, item)
}

// GET /
func (h *ShowcaseHandler) Page(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.FetchAll(r.Context())
	if err != nil {
		h.fail(w, r, "fetch showcase failed", err)
		return
	}
	if items == nil {
		items = []models.ShowcaseItem{}
	}

	var buf bytes.Buffer
	if err := h.render.Render(&buf, indexTemplate, map[string]any{"content": items}); err != nil {
		h.fail(w, r, "render showcase page failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *ShowcaseHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.fail(w, r, "encode showcase failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// fail logs the cause and answers with a bare 500; the client never sees which kind it was.
func (h *ShowcaseHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Log(logger.LogEntry{
		Level:   "error",
		Message: msg,
		Error:   err,
		Fields: map[string]any{
			"path":      r.URL.Path,
			"kind":      errorKind(err),
			"requestID": RequestIDFrom(r.Context()),
		},
	})

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrConnection):
		return "connection"
	case errors.Is(err, domain.ErrQuery):
		return "query"
	case errors.Is(err, domain.ErrTemplate):
		return "template"
	default:
		return "unknown"
	}
}
