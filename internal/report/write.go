package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"rbnotes/internal/model"
)

// WriteListing prints the numbered playlist listing.
func WriteListing(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "ID: Title (Track Count)")
	for _, e := range entries {
		fmt.Fprintf(bw, "%03d: %s (%d)\n", e.Index, e.Path, len(e.Node.Keys))
	}
	return bw.Flush()
}

// Summary counts what a report contained.
type Summary struct {
	Entries int
	Missing int
}

// WriteReport prints the track info section for entry followed by the plain
// tracklist. Missing tracks are noted inline and logged at warn level.
func WriteReport(w io.Writer, entry Entry, tracks Resolver, log *zap.Logger) (Summary, error) {
	var sum Summary
	bw := bufio.NewWriter(w)

	heading(bw, entry.Path)
	heading(bw, "Track Info")

	indent := "     "
	for line := range Render(entry.Node, tracks) {
		switch line.Kind {
		case LineTrack:
			if sum.Entries > 0 {
				fmt.Fprintln(bw)
			}
			sum.Entries++
			fmt.Fprintf(bw, "%03d. %s\n", line.Position, line.Text)
		case LineComment:
			fmt.Fprintf(bw, "%s%s %s\n", indent, model.IconComment, oneLine(line.Text))
		case LineHotcue, LineMemoryCue:
			marker := " "
			if line.Cue.IsLoop() {
				marker = model.IconLoop
			}
			fmt.Fprintf(bw, "%s%s %s\n", indent, marker, line.Text)
		case LineMissing:
			if sum.Entries > 0 {
				fmt.Fprintln(bw)
			}
			sum.Entries++
			sum.Missing++
			fmt.Fprintf(bw, "%03d. %s %s\n", line.Position, model.IconMissing, line.Text)
			log.Warn("Playlist entry not in collection",
				zap.String("playlist", entry.Path),
				zap.Int("position", line.Position),
				zap.String("key", line.Key))
		}
	}

	fmt.Fprintln(bw)
	heading(bw, "Tracklist")
	for name := range Tracklist(entry.Node, tracks) {
		fmt.Fprintln(bw, name)
	}

	return sum, bw.Flush()
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len([]rune(title))))
}

// oneLine folds multi-line comments so each report line stays one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
