// Package tree defines the capabilities a program tree must offer to be
// traversed and recombined, and the generic helpers built on them.
package tree

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Node is the capability set of a rooted, ordered tree node. T is the type
// the node's children are held as, normally an interface implemented by every
// node kind of one representation (see expr.Node).
//
// Dynamic node values must be comparable (pointers in practice); Validate
// uses node identity to detect sharing.
type Node[T any] interface {
	comparable
	// Successors returns the ordered children. An empty slice marks a leaf.
	Successors() []T
	// SetSuccessors replaces the children wholesale.
	SetSuccessors(children []T)
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() T
}

var (
	ErrNilNode    = errors.New("nil node")
	ErrCycle      = errors.New("cycle")
	ErrSharedNode = errors.New("node reachable more than once")
)

// IsNil reports whether n is the zero T or a nil pointer held in T, as in
// expr.Node((*expr.OpNode)(nil)).
func IsNil[T Node[T]](n T) bool {
	var zero T
	if n == zero {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// IsLeaf reports whether n has no children.
func IsLeaf[T Node[T]](n T) bool {
	return len(n.Successors()) == 0
}

// Subtree returns every node of the subtree rooted at root, root included,
// in pre-order. A nil root yields an empty slice.
func Subtree[T Node[T]](root T) []T {
	var result []T
	collect(root, &result)
	return result
}

func collect[T Node[T]](n T, result *[]T) {
	if IsNil(n) {
		return
	}
	*result = append(*result, n)
	for _, child := range n.Successors() {
		collect(child, result)
	}
}

// Count returns the number of nodes under root, root included.
func Count[T Node[T]](root T) int {
	return len(Subtree(root))
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth[T Node[T]](root T) int {
	if IsNil(root) {
		return 0
	}
	kids := root.Successors()
	if len(kids) == 0 {
		return 1
	}
	return 1 + lo.Max(lo.Map(kids, func(c T, _ int) int { return Depth(c) }))
}

// Equal reports whether a and b have the same shape and same(x, y) holds for
// every pair of nodes at matching positions.
func Equal[T Node[T]](a, b T, same func(x, y T) bool) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if !same(a, b) {
		return false
	}
	ka, kb := a.Successors(), b.Successors()
	if len(ka) != len(kb) {
		return false
	}
	for i := range ka {
		if !Equal(ka[i], kb[i], same) {
			return false
		}
	}
	return true
}

// Validate checks that root spans a finite tree: no nil nodes, no cycles and
// no node reachable through two different parents.
func Validate[T Node[T]](root T) error {
	v := validator[T]{
		seen:    make(map[T]struct{}),
		onStack: make(map[T]struct{}),
	}
	return v.visit(root, 0)
}

type validator[T Node[T]] struct {
	seen    map[T]struct{}
	onStack map[T]struct{}
}

func (v *validator[T]) visit(n T, depth int) error {
	if IsNil(n) {
		return errors.Wrapf(ErrNilNode, "at depth %d", depth)
	}
	if _, ok := v.onStack[n]; ok {
		return errors.Wrapf(ErrCycle, "at depth %d", depth)
	}
	if _, ok := v.seen[n]; ok {
		return errors.Wrapf(ErrSharedNode, "at depth %d", depth)
	}
	v.seen[n] = struct{}{}
	v.onStack[n] = struct{}{}
	for _, child := range n.Successors() {
		if err := v.visit(child, depth+1); err != nil {
			return err
		}
	}
	delete(v.onStack, n)
	return nil
}
