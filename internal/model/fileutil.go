package model

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// contextRadius is how many lines around the failing line a hint shows.
const contextRadius = 2

// LineContext is a window of source lines around a reported position.
type LineContext struct {
	First    int      // Line number of Lines[0]
	Target   int      // Line number the hint points at
	Column   int      // Column within Target, 0 when unknown
	Lines    []string // Window of lines, Target included
	ErrorMsg string   // Set when the window could not be built
}

// GetLineContext reads a file and returns the target line with surrounding
// context. Tilde paths are expanded.
func GetLineContext(filePath string, lineNumber, column int) LineContext {
	if strings.HasPrefix(filePath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			filePath = strings.Replace(filePath, "~", home, 1)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return LineContext{Target: lineNumber, ErrorMsg: fmt.Sprintf("Could not read file: %v", err)}
	}
	return LineContextFromBytes(data, lineNumber, column)
}

// LineContextFromBytes builds a LineContext from an in-memory document.
func LineContextFromBytes(data []byte, lineNumber, column int) LineContext {
	result := LineContext{Target: lineNumber, Column: column}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// Rekordbox writes one element per line but comments can be long
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	first := lineNumber - contextRadius
	if first < 1 {
		first = 1
	}
	last := lineNumber + contextRadius

	current := 0
	for scanner.Scan() {
		current++
		if current < first {
			continue
		}
		if current > last {
			break
		}
		result.Lines = append(result.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		result.ErrorMsg = fmt.Sprintf("Error reading file: %v", err)
		return result
	}

	if lineNumber < 1 || lineNumber > current {
		result.Lines = nil
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, current)
		return result
	}
	result.First = first
	return result
}

// String renders the window with line numbers and a caret under the column.
func (c LineContext) String() string {
	if c.ErrorMsg != "" {
		return c.ErrorMsg
	}
	var b strings.Builder
	for i, line := range c.Lines {
		n := c.First + i
		marker := " "
		if n == c.Target {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %5d | %s\n", marker, n, line)
		if n == c.Target && c.Column > 0 {
			fmt.Fprintf(&b, "  %5s | %s^\n", "", strings.Repeat(" ", c.Column-1))
		}
	}
	return b.String()
}
