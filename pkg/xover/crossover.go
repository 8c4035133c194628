// Package xover implements subtree-swap crossover for tree-structured
// programs.
//
// The offspring is always built from a deep copy of the first parent: one
// child slot of a randomly drawn node is replaced by a deep copy of a
// randomly drawn subtree of the second parent. Neither parent is modified.
package xover

import (
	"log/slog"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/wildfunctions/gp_xover/pkg/random"
	"github.com/wildfunctions/gp_xover/pkg/tree"
)

var (
	ErrEmptyTree = errors.New("empty tree")
	ErrNoRand    = errors.New("no random source")
)

// Trace records what a single crossover did. Index fields are pre-order
// positions as returned by tree.Subtree, and are -1 when no swap happened.
type Trace struct {
	Swapped    bool
	NodeIndex  int // receiving node in the offspring
	Slot       int // child slot of the receiving node that was replaced
	DonorIndex int // donor node in tree2
	DonorSize  int
}

func noSwap() Trace {
	return Trace{NodeIndex: -1, Slot: -1, DonorIndex: -1}
}

// Operator performs subtree-swap crossover on trees of node type T. It is
// safe for concurrent use when its random source is (see random.Locked).
type Operator[T tree.Node[T]] struct {
	cfg    Config
	rng    random.Source
	logger *slog.Logger
}

// New creates an operator drawing from rng.
func New[T tree.Node[T]](cfg Config, rng random.Source) (*Operator[T], error) {
	if rng == nil {
		return nil, ErrNoRand
	}
	if !lo.Contains(lo.Values(policies), cfg.Policy) {
		return nil, errors.Errorf("unknown policy: %d", int(cfg.Policy))
	}
	return &Operator[T]{
		cfg:    cfg,
		rng:    rng,
		logger: cfg.logger(),
	}, nil
}

// SwapSubtree runs one crossover with the default config.
func SwapSubtree[T tree.Node[T]](tree1, tree2 T, rng random.Source) (T, error) {
	op, err := New[T](DefaultConfig(), rng)
	if err != nil {
		var zero T
		return zero, err
	}
	return op.Swap(tree1, tree2)
}

// Swap returns a new tree: a copy of tree1 with one child slot replaced by a
// copy of a subtree of tree2, or the plain copy when the policy gives up.
func (o *Operator[T]) Swap(tree1, tree2 T) (T, error) {
	offspring, _, err := o.SwapTrace(tree1, tree2)
	return offspring, err
}

// SwapTrace is Swap, also reporting where the swap happened.
func (o *Operator[T]) SwapTrace(tree1, tree2 T) (T, Trace, error) {
	var zero T
	if tree.IsNil(tree1) {
		return zero, noSwap(), errors.Wrap(ErrEmptyTree, "tree1")
	}
	if tree.IsNil(tree2) {
		return zero, noSwap(), errors.Wrap(ErrEmptyTree, "tree2")
	}

	offspring := tree1.Clone()

	nodes := tree.Subtree(offspring)
	idx, ok := o.pickReceiver(nodes)
	if !ok {
		o.logger.Debug("crossover",
			slog.String("policy", o.cfg.Policy.String()),
			slog.Bool("swapped", false),
			slog.Int("size", len(nodes)),
		)
		return offspring, noSwap(), nil
	}
	receiver := nodes[idx]

	successors := slices.Clone(receiver.Successors())
	slot := o.rng.Intn(len(successors))

	donors := tree.Subtree(tree2)
	di := o.rng.Intn(len(donors))
	donor := donors[di].Clone()

	successors[slot] = donor
	receiver.SetSuccessors(successors)

	trace := Trace{
		Swapped:    true,
		NodeIndex:  idx,
		Slot:       slot,
		DonorIndex: di,
		DonorSize:  tree.Count(donor),
	}
	o.logger.Debug("crossover",
		slog.String("policy", o.cfg.Policy.String()),
		slog.Bool("swapped", true),
		slog.Int("node", idx),
		slog.Int("slot", slot),
		slog.Int("donor", di),
		slog.Int("donor_size", trace.DonorSize),
	)
	return offspring, trace, nil
}

// pickReceiver returns the pre-order index of the node whose child slot is
// replaced, or false when the policy gives up.
func (o *Operator[T]) pickReceiver(nodes []T) (int, bool) {
	switch o.cfg.Policy {
	case RetryUntilFound:
		internal := lo.Filter(lo.Range(len(nodes)), func(i int, _ int) bool {
			return !tree.IsLeaf(nodes[i])
		})
		if len(internal) == 0 {
			return -1, false
		}
		return internal[o.rng.Intn(len(internal))], true
	default:
		idx := o.rng.Intn(len(nodes))
		if tree.IsLeaf(nodes[idx]) {
			return -1, false
		}
		return idx, true
	}
}
