package surface

import (
	"encoding/json"
	"io"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// JSONRenderer marshals a ranking to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, ranking *vocab.Ranking) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ranking)
}
