package rekordbox

import (
	"io"
	"os"

	"go.uber.org/zap"

	"rbnotes/internal/model"
	"rbnotes/internal/xmltree"
)

const (
	tagProduct  = "PRODUCT"
	attrVersion = "Version"
)

// Library is a fully loaded export: the track index and the playlist tree.
type Library struct {
	Product    string // e.g. "rekordbox 6.8.0"
	Collection *Collection
	Playlists  *model.PlaylistNode
}

// FromDocument maps an already loaded document.
func FromDocument(doc *xmltree.Document, log *zap.Logger) (*Library, error) {
	collection, err := BuildCollection(doc, log)
	if err != nil {
		return nil, err
	}
	tree, err := BuildPlaylistTree(doc, log)
	if err != nil {
		return nil, err
	}

	lib := &Library{Collection: collection, Playlists: tree}
	if products := doc.Find(tagProduct); len(products) > 0 {
		p := products[0]
		lib.Product = p.Attr(attrName)
		if v := p.Attr(attrVersion); v != "" {
			lib.Product += " " + v
		}
	}
	return lib, nil
}

// Load parses r and maps it into a Library.
func Load(r io.Reader, log *zap.Logger) (*Library, error) {
	doc, err := xmltree.Load(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, log)
}

// Open loads the export at path. The file is closed before Open returns.
func Open(path string, log *zap.Logger) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Debug("Loading library", zap.String("path", path))
	return Load(f, log)
}
