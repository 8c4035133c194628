// Package expr is an expression-tree representation for GP programs. Besides
// the tree.Node capabilities the operators rely on, nodes can be evaluated
// (EvalF64) and sized (NodeCount, Depth, WeightedComplexity) by callers
// scoring or constraining offspring.
package expr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Node is the interface for all expression tree nodes. It satisfies
// tree.Node[Node], so expression trees can be traversed and recombined by
// the generic helpers.
type Node interface {
	Successors() []Node
	SetSuccessors(children []Node)
	Clone() Node
	EvalF64(x float64) (float64, bool)
	NodeCount() int
	Depth() int
}

// Op identifies an operation applied by an OpNode.
type Op int

const (
	OpNeg Op = iota
	OpAbs
	OpSin
	OpCos
	OpLn
	OpSqrt
	OpFloor
	OpCeil
	OpAdd // first binary op
	OpSub
	OpMul
	OpDiv
	OpPow
	opCount
)

var opNames = [opCount]string{
	OpNeg:   "neg",
	OpAbs:   "abs",
	OpSin:   "sin",
	OpCos:   "cos",
	OpLn:    "ln",
	OpSqrt:  "sqrt",
	OpFloor: "floor",
	OpCeil:  "ceil",
	OpAdd:   "add",
	OpSub:   "sub",
	OpMul:   "mul",
	OpDiv:   "div",
	OpPow:   "pow",
}

func (op Op) String() string {
	if op < 0 || op >= opCount {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Arity returns the number of arguments op takes.
func (op Op) Arity() int {
	if op < OpAdd {
		return 1
	}
	return 2
}

var ErrArity = errors.New("wrong number of arguments")

// VarNode represents the input variable. Name is a label only; EvalF64
// binds every VarNode to the same argument.
type VarNode struct {
	Name string
}

// ConstNode represents a numeric constant.
type ConstNode struct {
	Val float64
}

// OpNode applies an operation to its argument expressions.
type OpNode struct {
	Op   Op
	Args []Node
}

// NewOp builds an OpNode, checking that len(args) matches op's arity.
func NewOp(op Op, args ...Node) (*OpNode, error) {
	if op < 0 || op >= opCount {
		return nil, errors.Errorf("unknown op %d", int(op))
	}
	if len(args) != op.Arity() {
		return nil, errors.Wrapf(ErrArity, "%s takes %d, got %d", op, op.Arity(), len(args))
	}
	return &OpNode{Op: op, Args: args}, nil
}

func (v *VarNode) Successors() []Node   { return nil }
func (c *ConstNode) Successors() []Node { return nil }

// Successors returns the argument slice itself; writes through it are seen
// by the node.
func (o *OpNode) Successors() []Node { return o.Args }

// SetSuccessors on a leaf accepts only an empty child list.
func (v *VarNode) SetSuccessors(children []Node)   { mustBeLeaf("var", children) }
func (c *ConstNode) SetSuccessors(children []Node) { mustBeLeaf("const", children) }

// SetSuccessors replaces the arguments. It panics if the count does not
// match the op's arity.
func (o *OpNode) SetSuccessors(children []Node) {
	if len(children) != o.Op.Arity() {
		panic(fmt.Sprintf("expr: %s takes %d arguments, got %d", o.Op, o.Op.Arity(), len(children)))
	}
	o.Args = children
}

func mustBeLeaf(kind string, children []Node) {
	if len(children) != 0 {
		panic(fmt.Sprintf("expr: %s node cannot have children, got %d", kind, len(children)))
	}
}
