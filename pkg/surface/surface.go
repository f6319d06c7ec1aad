// Package surface defines output rendering interfaces for Vocascope results.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"io"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// Renderer produces formatted output from a ranking.
type Renderer interface {
	// Render writes the formatted ranking to the writer.
	Render(w io.Writer, ranking *vocab.Ranking) error
}
