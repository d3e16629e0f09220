package sgf

// Property is one SGF property: an identifier and its values.
type Property struct {
	Ident  string
	Values []string
}

// Node is one SGF node (";B[pd]C[comment]"). Properties keep file order.
type Node struct {
	Properties []Property
}

// find returns the property with the given identifier, or nil.
func (n *Node) find(ident string) *Property {
	for i := range n.Properties {
		if n.Properties[i].Ident == ident {
			return &n.Properties[i]
		}
	}
	return nil
}

// Has reports whether the node carries the property.
func (n *Node) Has(ident string) bool {
	return n.find(ident) != nil
}

// Get returns the first value of a property.
func (n *Node) Get(ident string) (string, bool) {
	p := n.find(ident)
	if p == nil || len(p.Values) == 0 {
		return "", false
	}
	return p.Values[0], true
}

// Values returns every value of a property.
func (n *Node) Values(ident string) []string {
	if p := n.find(ident); p != nil {
		return p.Values
	}
	return nil
}

// add appends values to a property, merging repeated identifiers.
func (n *Node) add(ident string, values []string) {
	if p := n.find(ident); p != nil {
		p.Values = append(p.Values, values...)
		return
	}
	n.Properties = append(n.Properties, Property{Ident: ident, Values: values})
}

// GameTree is one game tree: a sequence of nodes followed by variations.
type GameTree struct {
	Nodes    []*Node     // The sequence (main line of this tree)
	Children []*GameTree // Variations
}

// Root returns the first node of the tree.
func (t *GameTree) Root() *Node {
	if len(t.Nodes) == 0 {
		return nil
	}
	return t.Nodes[0]
}

// MainLine returns the nodes of the main line: this tree's sequence
// followed by the first variation at every branch.
func (t *GameTree) MainLine() []*Node {
	var nodes []*Node
	for tree := t; tree != nil; {
		nodes = append(nodes, tree.Nodes...)
		if len(tree.Children) == 0 {
			break
		}
		tree = tree.Children[0]
	}
	return nodes
}

// Collection is the contents of an SGF file.
type Collection struct {
	Trees []*GameTree
}
