// Package cli holds the line-oriented prompt that asks the user which
// playlist to report on.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"rbnotes/internal/model"
	"rbnotes/internal/report"
)

const (
	promptText  = "\nPlease enter playlist ID or 'q' to quit: "
	invalidText = "Invalid ID. Please retry!"
)

// Prompter reads selections from a line-based input.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	MaxAttempts int // Invalid answers allowed before giving up, 0 for no limit
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Choose asks until the answer names an entry. It returns model.ErrQuit when
// the user types q, and an error wrapping model.ErrInvalidSelection when the
// attempts run out or the input ends without a valid answer.
func (p *Prompter) Choose(entries []report.Entry) (report.Entry, error) {
	var lastErr error
	for attempt := 1; p.MaxAttempts == 0 || attempt <= p.MaxAttempts; attempt++ {
		fmt.Fprint(p.out, promptText)

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return report.Entry{}, err
		}
		answer := strings.TrimSpace(line)

		if answer == "" && errors.Is(err, io.EOF) {
			if lastErr == nil {
				lastErr = &report.SelectionError{Max: len(entries)}
			}
			return report.Entry{}, fmt.Errorf("input closed: %w", lastErr)
		}
		if strings.EqualFold(answer, "q") {
			return report.Entry{}, model.ErrQuit
		}

		entry, selErr := report.Select(entries, answer)
		if selErr == nil {
			return entry, nil
		}
		lastErr = selErr
		fmt.Fprintln(p.out, invalidText)

		if errors.Is(err, io.EOF) {
			return report.Entry{}, fmt.Errorf("input closed: %w", lastErr)
		}
	}
	return report.Entry{}, fmt.Errorf("giving up after %d attempts: %w", p.MaxAttempts, lastErr)
}
