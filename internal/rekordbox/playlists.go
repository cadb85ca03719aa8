package rekordbox

import (
	"fmt"

	"go.uber.org/zap"

	"rbnotes/internal/model"
	"rbnotes/internal/xmltree"
)

const (
	tagPlaylists = "PLAYLISTS"
	tagNode      = "NODE"

	attrKey     = "Key"
	attrKeyType = "KeyType"

	nodeTypeFolder   = "0"
	nodeTypePlaylist = "1"
)

// treeBuilder walks NODE elements into PlaylistNodes. It remembers every
// element already converted so that an in-memory document with a cycle or a
// node shared between two folders is rejected instead of recursing forever.
type treeBuilder struct {
	log    *zap.Logger
	onPath map[*xmltree.Node]bool
	seen   map[*xmltree.Node]bool
}

// BuildPlaylistTree converts the PLAYLISTS section of doc into a tree with a
// single root. When PLAYLISTS holds exactly one NODE (the "ROOT" folder
// Rekordbox writes) that node is the root; otherwise an unnamed folder is
// created to hold them.
func BuildPlaylistTree(doc *xmltree.Document, log *zap.Logger) (*model.PlaylistNode, error) {
	sections := doc.Find(tagPlaylists)
	if len(sections) != 1 {
		return nil, &model.DocumentError{
			Reason: fmt.Sprintf("expected one %s element, found %d", tagPlaylists, len(sections)),
		}
	}
	section := sections[0]

	b := &treeBuilder{
		log:    log,
		onPath: make(map[*xmltree.Node]bool),
		seen:   make(map[*xmltree.Node]bool),
	}

	tops := section.ChildrenNamed(tagNode)
	if len(tops) == 1 {
		return b.build(tops[0])
	}

	root := &model.PlaylistNode{Kind: model.NodeFolder, Line: section.Line}
	for _, n := range tops {
		child, err := b.build(n)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

func (b *treeBuilder) build(n *xmltree.Node) (*model.PlaylistNode, error) {
	if b.onPath[n] {
		return nil, &model.DocumentError{
			Line:   n.Line,
			Column: n.Column,
			Reason: fmt.Sprintf("playlist folder %q contains itself", n.Attr(attrName)),
		}
	}
	if b.seen[n] {
		return nil, &model.DocumentError{
			Line:   n.Line,
			Column: n.Column,
			Reason: fmt.Sprintf("playlist node %q appears under more than one folder", n.Attr(attrName)),
		}
	}
	b.seen[n] = true
	b.onPath[n] = true
	defer delete(b.onPath, n)

	node := &model.PlaylistNode{
		Name: n.Attr(attrName),
		Kind: nodeKind(n),
		Line: n.Line,
	}

	if node.IsFolder() {
		for _, c := range n.Children {
			if c.Name != tagNode {
				b.log.Warn("Ignoring non-folder content of playlist folder",
					zap.String("folder", node.Name),
					zap.String("element", c.Name),
					zap.Int("line", c.Line))
				continue
			}
			child, err := b.build(c)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	}

	if n.Attr(attrKeyType) == "1" {
		node.KeyType = model.KeyLocation
	}
	for _, c := range n.Children {
		if c.Name != tagTrack {
			b.log.Warn("Ignoring nested element in playlist",
				zap.String("playlist", node.Name),
				zap.String("element", c.Name),
				zap.Int("line", c.Line))
			continue
		}
		key, ok := c.LookupAttr(attrKey)
		if !ok || key == "" {
			b.log.Warn("Skipping playlist entry without Key",
				zap.String("playlist", node.Name),
				zap.Int("line", c.Line))
			continue
		}
		node.Keys = append(node.Keys, key)
	}
	return node, nil
}

// nodeKind reads the Type attribute, inferring the kind from the children
// when the attribute is missing or unknown.
func nodeKind(n *xmltree.Node) model.NodeKind {
	switch n.Attr(attrType) {
	case nodeTypeFolder:
		return model.NodeFolder
	case nodeTypePlaylist:
		return model.NodePlaylist
	}
	if len(n.ChildrenNamed(tagNode)) > 0 {
		return model.NodeFolder
	}
	return model.NodePlaylist
}
