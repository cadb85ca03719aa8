package report

import (
	"fmt"
	"strconv"
	"strings"

	"rbnotes/internal/model"
)

// Entry is one selectable playlist in the listing.
type Entry struct {
	Index int    // 1-based, as printed
	Path  string // Folder names and playlist name joined with "/"
	Node  *model.PlaylistNode
}

// ListPlaylists flattens the tree depth-first, parents before children.
// Folders are not listed themselves but their names prefix the paths of the
// playlists below them. The root's own name is left out.
func ListPlaylists(root *model.PlaylistNode) []Entry {
	var entries []Entry
	if root == nil {
		return entries
	}

	var walk func(n *model.PlaylistNode, prefix []string)
	walk = func(n *model.PlaylistNode, prefix []string) {
		if !n.IsFolder() {
			path := append(append([]string(nil), prefix...), n.Name)
			entries = append(entries, Entry{
				Index: len(entries) + 1,
				Path:  strings.Join(path, "/"),
				Node:  n,
			})
			return
		}
		next := prefix
		if n != root {
			next = append(append([]string(nil), prefix...), n.Name)
		}
		for _, c := range n.Children {
			walk(c, next)
		}
	}
	walk(root, nil)
	return entries
}

// SelectionError reports input that does not name a listed playlist.
type SelectionError struct {
	Input string
	Max   int
}

func (e *SelectionError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%v: %q (no playlists to choose from)", model.ErrInvalidSelection, e.Input)
	}
	return fmt.Sprintf("%v: %q is not between 1 and %d", model.ErrInvalidSelection, e.Input, e.Max)
}

func (e *SelectionError) Unwrap() error {
	return model.ErrInvalidSelection
}

// Select parses a line of user input as a 1-based index into entries.
func Select(entries []Entry, input string) (Entry, error) {
	text := strings.TrimSpace(input)
	i, err := strconv.Atoi(text)
	if err != nil {
		return Entry{}, &SelectionError{Input: text, Max: len(entries)}
	}
	entry, err := SelectIndex(entries, i)
	if err != nil {
		return Entry{}, &SelectionError{Input: text, Max: len(entries)}
	}
	return entry, nil
}

// SelectIndex returns the entry with the given 1-based index.
func SelectIndex(entries []Entry, i int) (Entry, error) {
	if i < 1 || i > len(entries) {
		return Entry{}, &SelectionError{Input: strconv.Itoa(i), Max: len(entries)}
	}
	return entries[i-1], nil
}
