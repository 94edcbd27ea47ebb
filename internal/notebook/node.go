package notebook

// Kind distinguishes file leaves from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node mirrors one filesystem entry under the root. Parents own their
// children; the parent pointer is a back-reference only and is nil for the
// synthetic root node.
type Node struct {
	name     string
	kind     Kind
	parent   *Node
	children []*Node
}

func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }
func (n *Node) IsDir() bool  { return n.kind == KindDirectory }
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether n is the synthetic node standing for the root
// directory itself. It is never a load/save target.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Children returns the node's children in mirror order. The slice is shared
// with the tree and must not be modified.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) appendChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// removeChild drops child by identity and reports whether it was present.
func (n *Node) removeChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}
