package ast

// Walk performs a pre-order traversal, calling
// visit(path, node) for n and every descendant, where path is the list of
// strict ancestors from the root down to (but not including) node. Stop
// the walk early by returning false from visit.
func Walk(n *Node, visit func(path []*Node, node *Node) bool) {
	walk(nil, n, visit)
}

func walk(path []*Node, n *Node, visit func(path []*Node, node *Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(path, n) {
		return false
	}
	childPath := append(append([]*Node{}, path...), n)
	for _, c := range n.AllChildren() {
		if !walk(childPath, c, visit) {
			return false
		}
	}
	return true
}

// FilterByKind returns every node at or beneath n (inclusive of n itself)
// whose Kind is a member of kinds, in pre-order.
func FilterByKind(n *Node, kinds ...Kind) []*Node {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []*Node
	Walk(n, func(_ []*Node, node *Node) bool {
		if want[node.Kind] {
			out = append(out, node)
		}
		return true
	})
	return out
}
