// Package render defines the contract shared by all output formats.
//
// A Renderer turns a parsed markup.Document into one binary artifact.
// Implementations live in subpackages (docx, pdf) and must be safe for
// concurrent use: all per-call state is created inside Render.
package render

import (
	"context"

	"github.com/alnah/go-md2cv/internal/markup"
)

// Renderer lays out a document in one output format.
type Renderer interface {
	// Render returns the complete artifact, or an error and no bytes.
	Render(ctx context.Context, doc markup.Document) ([]byte, error)
}
