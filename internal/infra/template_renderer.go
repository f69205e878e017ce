package infra

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/Vovarama1992/showcase/internal/domain"
	"github.com/Vovarama1992/showcase/internal/ports"
)

type TemplateRenderer struct {
	fsys fs.FS
}

func NewTemplateRenderer(fsys fs.FS) ports.PageRenderer {
	return &TemplateRenderer{fsys: fsys}
}

// Render loads the template by name on every call and executes it into w.
func (t *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	tmpl, err := template.New(name).ParseFS(t.fsys, name)
	if err != nil {
		return fmt.Errorf("load template %s: %w: %w", name, domain.ErrTemplate, err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute template %s: %w: %w", name, domain.ErrTemplate, err)
	}
	return nil
}
