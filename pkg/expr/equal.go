package expr

import "github.com/wildfunctions/gp_xover/pkg/tree"

// Same reports whether a and b carry the same label, ignoring children.
func Same(a, b Node) bool {
	switch x := a.(type) {
	case *VarNode:
		y, ok := b.(*VarNode)
		return ok && x.Name == y.Name
	case *ConstNode:
		y, ok := b.(*ConstNode)
		return ok && x.Val == y.Val
	case *OpNode:
		y, ok := b.(*OpNode)
		return ok && x.Op == y.Op
	default:
		return false
	}
}

// Equal reports whether two expression trees are structurally identical.
func Equal(a, b Node) bool {
	return tree.Equal(a, b, Same)
}
