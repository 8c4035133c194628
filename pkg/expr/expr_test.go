package expr

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/wildfunctions/gp_xover/pkg/tree"
)

func c(v float64) *ConstNode { return &ConstNode{Val: v} }

func op(o Op, args ...Node) *OpNode { return &OpNode{Op: o, Args: args} }

func assertEval(t *testing.T, node Node, x float64, expected float64, tol float64) {
	t.Helper()
	got, ok := node.EvalF64(x)
	if !ok {
		t.Fatalf("EvalF64 returned ok=false for x=%v", x)
	}
	if math.Abs(got-expected) > tol {
		t.Errorf("EvalF64(x=%v) = %v, want %v (tol=%v)", x, got, expected, tol)
	}
}

func assertEvalFails(t *testing.T, node Node, x float64) {
	t.Helper()
	if got, ok := node.EvalF64(x); ok {
		t.Errorf("EvalF64(x=%v) = %v, want ok=false", x, got)
	}
}

func TestVarNode(t *testing.T) {
	v := &VarNode{}
	assertEval(t, v, 5, 5, 0)
	assertEval(t, v, 0, 0, 0)

	if v.NodeCount() != 1 {
		t.Errorf("VarNode.NodeCount() = %d, want 1", v.NodeCount())
	}
	if len(v.Successors()) != 0 {
		t.Errorf("VarNode should be a leaf")
	}
}

func TestConstNode(t *testing.T) {
	assertEval(t, c(7), 99, 7, 0)
	if c(7).Depth() != 1 {
		t.Errorf("ConstNode.Depth() = %d, want 1", c(7).Depth())
	}
}

func TestArithmetic(t *testing.T) {
	// (x + 3) * 2
	node := op(OpMul, op(OpAdd, &VarNode{}, c(3)), c(2))
	assertEval(t, node, 4, 14, 0)

	// x / 0 fails
	assertEvalFails(t, op(OpDiv, &VarNode{}, c(0)), 1)

	// 2^10
	assertEval(t, op(OpPow, c(2), c(10)), 0, 1024, 0)
	assertEvalFails(t, op(OpPow, c(2), c(5000)), 0)
}

func TestUnary(t *testing.T) {
	assertEval(t, op(OpNeg, c(3)), 0, -3, 0)
	assertEval(t, op(OpAbs, c(-3)), 0, 3, 0)
	assertEval(t, op(OpSqrt, c(16)), 0, 4, 0)
	assertEval(t, op(OpLn, c(math.E)), 0, 1, 1e-12)
	assertEval(t, op(OpSin, c(0)), 0, 0, 1e-12)
	assertEval(t, op(OpCos, c(0)), 0, 1, 1e-12)
	assertEval(t, op(OpFloor, c(2.7)), 0, 2, 0)
	assertEval(t, op(OpCeil, c(2.1)), 0, 3, 0)

	assertEvalFails(t, op(OpSqrt, c(-1)), 0)
	assertEvalFails(t, op(OpLn, c(0)), 0)
}

func TestEvalArityMismatch(t *testing.T) {
	assertEvalFails(t, op(OpAdd, c(1)), 0)
}

func TestNewOp(t *testing.T) {
	n, err := NewOp(OpAdd, c(1), c(2))
	if err != nil {
		t.Fatalf("NewOp: %v", err)
	}
	assertEval(t, n, 0, 3, 0)

	_, err = NewOp(OpSin, c(1), c(2))
	if !errors.Is(err, ErrArity) {
		t.Errorf("NewOp(sin, 2 args) error = %v, want ErrArity", err)
	}
	if _, err := NewOp(Op(99)); err == nil {
		t.Errorf("NewOp(unknown) should fail")
	}
}

func TestOpString(t *testing.T) {
	if OpPow.String() != "pow" {
		t.Errorf("OpPow.String() = %q, want \"pow\"", OpPow.String())
	}
	if Op(-1).String() != "Op(-1)" {
		t.Errorf("Op(-1).String() = %q", Op(-1).String())
	}
}

func TestComplexity(t *testing.T) {
	// sin(x + 1)
	node := op(OpSin, op(OpAdd, &VarNode{}, c(1)))
	if node.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", node.NodeCount())
	}
	if node.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", node.Depth())
	}
	// sin=3, add=1, x=1, 1=1
	if got := WeightedComplexity(node); got != 6 {
		t.Errorf("WeightedComplexity() = %v, want 6", got)
	}
	if got := WeightedComplexity(c(1000)); math.Abs(got-4) > 1e-9 {
		t.Errorf("WeightedComplexity(1000) = %v, want 4", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := op(OpAdd, op(OpNeg, &VarNode{}), c(2))
	cl := orig.Clone()

	if !Equal(orig, cl) {
		t.Fatal("clone should equal original")
	}

	cl.(*OpNode).Op = OpSub
	cl.Successors()[1].(*ConstNode).Val = 9
	cl.Successors()[0].SetSuccessors([]Node{c(1)})

	if orig.Op != OpAdd {
		t.Errorf("original op changed to %v", orig.Op)
	}
	if orig.Args[1].(*ConstNode).Val != 2 {
		t.Errorf("original constant changed")
	}
	if _, ok := orig.Args[0].Successors()[0].(*VarNode); !ok {
		t.Errorf("original grandchild replaced")
	}
}

func TestSuccessorsAlias(t *testing.T) {
	n := op(OpAdd, c(1), c(2))
	kids := n.Successors()
	kids[0] = c(5)
	n.SetSuccessors(kids)
	assertEval(t, n, 0, 7, 0)
}

func TestSetSuccessorsPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"leaf with children", func() { c(1).SetSuccessors([]Node{c(2)}) }},
		{"var with children", func() { (&VarNode{}).SetSuccessors([]Node{c(2)}) }},
		{"arity mismatch", func() { op(OpNeg, c(1)).SetSuccessors([]Node{c(1), c(2)}) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			tc.fn()
		})
	}

	// Empty child list on a leaf is fine.
	c(1).SetSuccessors(nil)
}

func TestEqual(t *testing.T) {
	a := op(OpMul, &VarNode{}, c(2))
	cases := []struct {
		name string
		b    Node
		want bool
	}{
		{"identical", op(OpMul, &VarNode{}, c(2)), true},
		{"different op", op(OpAdd, &VarNode{}, c(2)), false},
		{"different const", op(OpMul, &VarNode{}, c(3)), false},
		{"different kind", op(OpMul, c(0), c(2)), false},
		{"leaf vs op", c(2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(a, tc.b); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTreeHelpersAgree(t *testing.T) {
	node := op(OpDiv, op(OpSin, &VarNode{}), op(OpAdd, c(1), op(OpNeg, c(2))))
	if got := tree.Count[Node](node); got != node.NodeCount() {
		t.Errorf("tree.Count = %d, NodeCount = %d", got, node.NodeCount())
	}
	if got := tree.Depth[Node](node); got != node.Depth() {
		t.Errorf("tree.Depth = %d, Depth = %d", got, node.Depth())
	}
	if err := tree.Validate[Node](node); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestRepeatedVarNodesAreDistinct(t *testing.T) {
	a, b := &VarNode{}, &VarNode{}
	if a == b {
		t.Fatal("two VarNode allocations share an address")
	}

	node := op(OpMul, &VarNode{}, op(OpAdd, &VarNode{}, &VarNode{Name: "x"}))
	if err := tree.Validate[Node](node); err != nil {
		t.Errorf("Validate: %v", err)
	}

	cl := node.Clone()
	if err := tree.Validate[Node](op(OpAdd, node, cl)); err != nil {
		t.Errorf("original and clone share nodes: %v", err)
	}
	if !Equal(node, cl) {
		t.Errorf("clone should equal original")
	}
	if Equal(&VarNode{Name: "x"}, &VarNode{Name: "y"}) {
		t.Errorf("differently named vars should not be equal")
	}
}

func TestTypedNilNode(t *testing.T) {
	var nilOp *OpNode
	if !tree.IsNil[Node](nilOp) {
		t.Errorf("IsNil(typed nil) = false")
	}
	if tree.IsNil[Node](c(1)) {
		t.Errorf("IsNil(const) = true")
	}
	err := tree.Validate[Node](op(OpAdd, nilOp, c(1)))
	if !errors.Is(err, tree.ErrNilNode) {
		t.Errorf("Validate with typed nil child = %v, want ErrNilNode", err)
	}
	if got := tree.Count[Node](op(OpAdd, nilOp, c(1))); got != 2 {
		t.Errorf("Count skipping typed nil = %d, want 2", got)
	}
}
