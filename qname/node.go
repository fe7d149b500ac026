package qname

// NewNode returns a new node for one level of a name.
func NewNode(txt string) *Node {
	return &Node{
		txt: txt,
	}
}

type Node struct {
	// Values stored under this name, controlled by the caller.
	Values []any

	txt      string
	parent   *Node
	children []*Node
}

func (n *Node) match(result *[]*Node, parts []string, i int) {
	switch {
	case i > len(parts)-1:
		if len(n.Values) > 0 {
			*result = append(*result, n)
		}
		return

	case parts[i] == "#":
		// i is 0 only for the virtual root
		if i > 0 && len(n.Values) > 0 {
			*result = append(*result, n)
		}
		*result = append(*result, n.all()...)
		return

	case parts[i] == "+":
		for _, child := range n.children {
			child.match(result, parts, i+1)
		}
		return
	}

	if c := n.FindChild(parts[i]); c != nil {
		c.match(result, parts, i+1)
	}
}

// all returns descendants holding values, depth first.
func (n *Node) all() []*Node {
	var res []*Node
	for _, c := range n.children {
		if len(c.Values) > 0 {
			res = append(res, c)
		}
		res = append(res, c.all()...)
	}
	return res
}

func (n *Node) Find(parts []string) (*Node, bool) {
	if len(parts) == 0 {
		return n, true
	}
	c := n.FindChild(parts[0])
	if c == nil {
		return nil, false
	}
	return c.Find(parts[1:])
}

func (n *Node) FindChild(txt string) *Node {
	for _, child := range n.children {
		if child.txt == txt {
			return child
		}
	}
	return nil
}

func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Name returns the qualified name of n.
func (n *Node) Name() string {
	if n.parent == nil {
		return n.txt
	}
	return n.parent.Name() + "/" + n.txt
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}
