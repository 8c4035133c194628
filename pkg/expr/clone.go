package expr

import "github.com/samber/lo"

func (v *VarNode) Clone() Node {
	return &VarNode{Name: v.Name}
}

func (c *ConstNode) Clone() Node {
	return &ConstNode{Val: c.Val}
}

func (o *OpNode) Clone() Node {
	return &OpNode{
		Op:   o.Op,
		Args: lo.Map(o.Args, func(a Node, _ int) Node { return a.Clone() }),
	}
}
