package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"rbnotes/internal/model"
)

// Load decodes r into a Document.
func Load(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	doc := &Document{}
	var stack []*Node

	for {
		line, col := dec.InputPos()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Name:   t.Name.Local,
				Attrs:  make(map[string]string, len(t.Attr)),
				Line:   line,
				Column: col,
			}
			for _, a := range t.Attr {
				node.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				doc.Roots = append(doc.Roots, node)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			// The strict decoder already rejects mismatched end tags
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, &model.DocumentError{
			Line:   open.Line,
			Column: open.Column,
			Reason: fmt.Sprintf("element <%s> is never closed", open.Name),
		}
	}
	if len(doc.Roots) == 0 {
		return nil, &model.DocumentError{Reason: "document has no root element"}
	}
	return doc, nil
}

// LoadFile opens path, loads it and closes the handle before returning.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

func malformed(dec *xml.Decoder, err error) error {
	line, col := dec.InputPos()
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &model.DocumentError{Line: syntaxErr.Line, Column: col, Reason: syntaxErr.Msg}
	}
	return &model.DocumentError{Line: line, Column: col, Err: err}
}
