package xmltree

// Node is one element of a loaded document.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
	Line     int
	Column   int
}

// Attr returns the attribute value, or "" when the attribute is absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// LookupAttr returns the attribute value and whether it was present.
func (n *Node) LookupAttr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// ChildrenNamed returns the direct children with the given tag name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find returns every descendant with the given tag name in document order.
// The node itself is not included. Each node is visited once, so a tree
// assembled by hand with shared or cyclic children still terminates.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	visited := map[*Node]bool{n: true}
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if visited[c] {
				continue
			}
			visited[c] = true
			if c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Document is an ordered forest of top-level elements.
type Document struct {
	Roots []*Node
}

// Find returns every element in the document with the given tag name,
// top-level elements included, in document order.
func (d *Document) Find(name string) []*Node {
	var out []*Node
	for _, r := range d.Roots {
		if r.Name == name {
			out = append(out, r)
		}
		out = append(out, r.Find(name)...)
	}
	return out
}
