package expr

import (
	"math"

	"github.com/samber/lo"
)

func (v *VarNode) NodeCount() int   { return 1 }
func (c *ConstNode) NodeCount() int { return 1 }
func (o *OpNode) NodeCount() int {
	return 1 + lo.SumBy(o.Args, func(a Node) int { return a.NodeCount() })
}

func (v *VarNode) Depth() int   { return 1 }
func (c *ConstNode) Depth() int { return 1 }
func (o *OpNode) Depth() int {
	d := 0
	for _, a := range o.Args {
		if ad := a.Depth(); ad > d {
			d = ad
		}
	}
	return 1 + d
}

// WeightedComplexity returns a complexity score with heavier weight for
// operations that are more "expensive" (trig, logs, powers).
func WeightedComplexity(node Node) float64 {
	switch n := node.(type) {
	case *VarNode:
		return 1.0
	case *ConstNode:
		v := math.Abs(n.Val)
		if v <= 10 {
			return 1.0
		}
		return 1.0 + math.Log10(v)
	case *OpNode:
		return opWeight(n.Op) + lo.SumBy(n.Args, WeightedComplexity)
	default:
		return 1.0
	}
}

func opWeight(op Op) float64 {
	switch op {
	case OpNeg, OpAbs, OpAdd, OpSub:
		return 1.0
	case OpMul, OpDiv:
		return 1.5
	case OpFloor, OpCeil, OpSqrt, OpPow:
		return 2.0
	case OpSin, OpCos, OpLn:
		return 3.0
	default:
		return 2.0
	}
}
