package xover

import (
	"io"
	"log/slog"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Policy decides what happens when the receiving node drawn from the
// offspring is a leaf.
type Policy int

const (
	// GiveUpOnLeaf returns the unmodified copy of tree1 as soon as the drawn
	// node is a leaf. Single-node parents always come back unchanged.
	GiveUpOnLeaf Policy = iota
	// RetryUntilFound draws uniformly among the internal nodes only, and
	// returns the copy unchanged when there are none.
	RetryUntilFound
)

var policies = map[string]Policy{
	"give-up-on-leaf":   GiveUpOnLeaf,
	"retry-until-found": RetryUntilFound,
}

func (p Policy) String() string {
	for name, q := range policies {
		if q == p {
			return name
		}
	}
	return "unknown"
}

// ParsePolicy returns the policy registered under name.
func ParsePolicy(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return 0, errors.Errorf("unknown policy: %s (available: %v)", name, PolicyNames())
	}
	return p, nil
}

// PolicyNames returns all policy names, sorted.
func PolicyNames() []string {
	names := lo.Keys(policies)
	sort.Strings(names)
	return names
}

// Config holds the operator's parameters.
type Config struct {
	Policy Policy
	// Logger receives one Debug record per crossover. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns a config with the give-up-on-leaf policy and no
// logging.
func DefaultConfig() Config {
	return Config{
		Policy: GiveUpOnLeaf,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
