// Package ast defines the tagged AST node variants as one flat Node type,
// a uniform (attribute-name, child) iteration protocol, and the traversal
// operations built on it: a pre-order walk carrying the ancestor path, a
// filter-by-kind search, and structural equality. There is no reflection
// anywhere in this package: every node exposes its children through an
// explicit Attrs method.
package ast

import "github.com/evaristocosta/javalang/token"

// Node is every AST variant, realized as one struct tagged by Kind. Fields
// not meaningful for a given Kind are left at their zero value. Tokens and
// nodes are immutable once constructed: the parser builds a Node bottom-up
// and never mutates it again after it is attached to its parent.
type Node struct {
	Kind  Kind
	Start token.Position
	Endp  token.Position

	Modifiers   ModifierSet
	Annotations []*Node // ordered list of Kind Annotation nodes, source order

	// Tok is the node's single defining token where one exists: a Literal's
	// literal token, a Name's identifier token, a BasicType's keyword token,
	// an operator node's operator token, a label's identifier, and so on.
	Tok *token.Token

	// Str carries auxiliary text that has no single backing token: a
	// dotted package/import name, a qualified ReferenceType's simple name,
	// a method/label name used as a child-bearing node rather than a leaf.
	Str string

	// Dims is the array-dimension count for BasicType/ReferenceType nodes
	// (e.g. 2 for "int[][]") and for FormalParameter/VariableDeclarator
	// nodes whose bracket pairs trail the declared name (Java's legacy
	// "int a[]" form).
	Dims int

	// Javadoc is the position of the Javadoc comment attached to this
	// declaration, if any.
	Javadoc *token.Position

	attrs []Attr
}

// Attr is one named attribute of a Node for the uniform iteration
// protocol: a name plus zero, one, or many child nodes. Singular
// attributes carry at most one entry in Nodes; list attributes (imports,
// statements, type arguments, ...) carry zero or more, always in source
// order.
type Attr struct {
	Name  string
	Nodes []*Node
}

// New creates a Node of the given kind starting at pos. The caller sets Endp
// once the node's last token has been consumed.
func New(kind Kind, pos token.Position) *Node {
	return &Node{Kind: kind, Start: pos, Endp: pos}
}

// Pos returns the position a diagnostics consumer should point at: the
// position of the node's first significant token.
func (n *Node) Pos() token.Position { return n.Start }

// End returns the position just past the node's last consumed token.
func (n *Node) End() token.Position { return n.Endp }

// SetEnd records the node's end position; called once, right before the
// node is returned to its caller.
func (n *Node) SetEnd(pos token.Position) *Node {
	n.Endp = pos
	return n
}

// Set registers a singular child attribute. A nil child still registers the
// attribute name (so Attrs() is a stable shape per Kind) but contributes no
// entry to Nodes.
func (n *Node) Set(name string, child *Node) *Node {
	a := Attr{Name: name}
	if child != nil {
		a.Nodes = []*Node{child}
	}
	n.attrs = append(n.attrs, a)
	return n
}

// SetList registers a list child attribute, in the given order.
func (n *Node) SetList(name string, children []*Node) *Node {
	n.attrs = append(n.attrs, Attr{Name: name, Nodes: children})
	return n
}

// Attrs returns the node's declared attributes in declaration order, the
// uniform iteration protocol used in place of reflection over field names.
func (n *Node) Attrs() []Attr { return n.attrs }

// Child returns the single child of a singular attribute, or nil if absent
// or not found.
func (n *Node) Child(name string) *Node {
	for _, a := range n.attrs {
		if a.Name == name && len(a.Nodes) > 0 {
			return a.Nodes[0]
		}
	}
	return nil
}

// Children returns every child of a list (or singular) attribute by name.
func (n *Node) Children(name string) []*Node {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Nodes
		}
	}
	return nil
}

// AllChildren flattens every attribute's nodes into one slice, in
// declaration order: the set Walk and FilterByKind recurse into.
func (n *Node) AllChildren() []*Node {
	var out []*Node
	for _, a := range n.attrs {
		out = append(out, a.Nodes...)
	}
	out = append(out, n.Annotations...)
	return out
}

// Equal reports structural equality: same Kind, same defining token text,
// same auxiliary text and dims, equal modifier sets, and pairwise-equal
// annotations and attributes. Positions and Javadoc attachment are
// ignored.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Str != o.Str || n.Dims != o.Dims {
		return false
	}
	if (n.Tok == nil) != (o.Tok == nil) {
		return false
	}
	if n.Tok != nil && (n.Tok.Text != o.Tok.Text || n.Tok.Kind != o.Tok.Kind || n.Tok.Literal != o.Tok.Literal) {
		return false
	}
	if !n.Modifiers.Equals(o.Modifiers) {
		return false
	}
	if len(n.Annotations) != len(o.Annotations) {
		return false
	}
	for i, a := range n.Annotations {
		if !a.Equal(o.Annotations[i]) {
			return false
		}
	}
	if len(n.attrs) != len(o.attrs) {
		return false
	}
	for i, a := range n.attrs {
		b := o.attrs[i]
		if a.Name != b.Name || len(a.Nodes) != len(b.Nodes) {
			return false
		}
		for j, c := range a.Nodes {
			if !c.Equal(b.Nodes[j]) {
				return false
			}
		}
	}
	return true
}
