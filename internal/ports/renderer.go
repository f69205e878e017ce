package ports

import "io"

type PageRenderer interface {
	Render(w io.Writer, name string, data any) error
}
