package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vocascope/vocascope/pkg/scoring"
	"github.com/vocascope/vocascope/pkg/vocab"
)

// TerminalRenderer renders a ranking as colored terminal output.
// Limit caps how many entries are shown; 0 shows all.
type TerminalRenderer struct {
	Limit int
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// meterWidth is the cell count of the score meter.
const meterWidth = 10

func bandColor(band string) string {
	if noColor() {
		return ""
	}
	switch band {
	case scoring.BandWellConnected:
		return colorGreen
	case scoring.BandConnected, scoring.BandEmerging:
		return colorYellow
	case scoring.BandIsolated:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, ranking *vocab.Ranking) error {
	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Vocascope: %d vocabularies for %q", len(ranking.Entries), ranking.Term)))

	if len(ranking.Entries) == 0 {
		fmt.Fprintln(w, "No vocabularies matched.")
		fmt.Fprintln(w)
		return nil
	}

	shown := len(ranking.Entries)
	if r.Limit > 0 && r.Limit < shown {
		shown = r.Limit
	}

	for i := 0; i < shown; i++ {
		e := ranking.Entries[i]
		band := scoring.BandFromScore(e.ConnectivityScore)

		label := e.Prefix
		if label == "" {
			label = e.URI
		}
		if label == "" {
			label = "(unidentified)"
		}

		fmt.Fprintf(w, "%3d. %s %.2f  %s", i+1, scoreMeter(e.ConnectivityScore), e.ConnectivityScore, bold(label))
		if e.Title != "" {
			fmt.Fprintf(w, " — %s", e.Title)
		}
		fmt.Fprintf(w, "  [%s]\n", colored(band, bandColor(band)))

		if e.URI != "" && e.URI != label {
			fmt.Fprintf(w, "     %s\n", dim(e.URI))
		}
		if e.Description != "" {
			for _, line := range wrapText(e.Description, 70) {
				fmt.Fprintf(w, "     %s\n", dim(line))
			}
		}
		fmt.Fprintln(w)
	}

	if shown < len(ranking.Entries) {
		fmt.Fprintf(w, "%s\n\n", dim(fmt.Sprintf("... and %d more", len(ranking.Entries)-shown)))
	}

	return nil
}

// scoreMeter renders a fixed-width bar for a score in [0, 1].
func scoreMeter(score float64) string {
	filled := int(score*meterWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > meterWidth {
		filled = meterWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
