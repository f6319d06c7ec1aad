package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/vocascope/vocascope/pkg/scoring"
	"github.com/vocascope/vocascope/pkg/vocab"
)

// MarkdownRenderer renders a ranking as a Markdown document, suitable
// for pasting into issues or docs. Limit caps the table; 0 shows all.
type MarkdownRenderer struct {
	Limit int
}

func (r *MarkdownRenderer) Render(w io.Writer, ranking *vocab.Ranking) error {
	_, err := io.WriteString(w, r.buildMarkdown(ranking))
	return err
}

func (r *MarkdownRenderer) buildMarkdown(ranking *vocab.Ranking) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Vocascope: %d vocabularies for %q\n\n", len(ranking.Entries), ranking.Term))

	if len(ranking.Entries) == 0 {
		sb.WriteString("_No vocabularies matched._\n")
		return sb.String()
	}

	shown := len(ranking.Entries)
	if r.Limit > 0 && r.Limit < shown {
		shown = r.Limit
	}

	sb.WriteString("| # | Prefix | Vocabulary | Score | Band |\n")
	sb.WriteString("|---|--------|------------|-------|------|\n")
	for i := 0; i < shown; i++ {
		e := ranking.Entries[i]
		band := scoring.BandFromScore(e.ConnectivityScore)

		name := e.Title
		if e.URI != "" {
			name = fmt.Sprintf("[%s](%s)", mdEscape(e.Title), e.URI)
		} else {
			name = mdEscape(name)
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %.2f | %s |\n",
			i+1, mdEscape(e.Prefix), name, e.ConnectivityScore, band))
	}
	if shown < len(ranking.Entries) {
		sb.WriteString(fmt.Sprintf("\n_... and %d more_\n", len(ranking.Entries)-shown))
	}

	if !ranking.GeneratedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("\n_Generated %s_\n", ranking.GeneratedAt.Format("2006-01-02 15:04 MST")))
	}

	return sb.String()
}

// mdEscape keeps cell text from breaking the table.
func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
