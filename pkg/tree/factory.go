package tree

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// Constructor wraps a freshly allocated base into a space variant.
// The returned space must embed the given base.
type Constructor func(base *Base) Space

// Factory maps kind tags to space constructors.
// It is safe for concurrent use, so one factory can be shared by several trees.
type Factory struct {
	mu    sync.RWMutex
	ctors map[domain.Kind]Constructor
}

// NewFactory creates a factory with no registered kinds.
func NewFactory() *Factory {
	return &Factory{
		ctors: make(map[domain.Kind]Constructor),
	}
}

// DefaultFactory creates a factory with the built-in action and chance kinds.
func DefaultFactory() *Factory {
	f := NewFactory()
	f.ctors[domain.KindAction] = func(b *Base) Space { return &ActionSpace{Base: b} }
	f.ctors[domain.KindChance] = func(b *Base) Space { return &ChanceSpace{Base: b} }
	return f
}

// Register adds a constructor for kind.
// Registering a kind that already exists returns domain.ErrKindConflict.
func (f *Factory) Register(kind domain.Kind, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("register %q: nil constructor", kind)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ctors[kind]; ok {
		return fmt.Errorf("register %q: %w", kind, domain.ErrKindConflict)
	}
	f.ctors[kind] = ctor
	return nil
}

// Kinds returns the registered kinds, sorted.
func (f *Factory) Kinds() []domain.Kind {
	f.mu.RLock()
	defer f.mu.RUnlock()
	kinds := make([]domain.Kind, 0, len(f.ctors))
	for k := range f.ctors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Build constructs a space of the given kind and registers it with t.
// An unknown kind returns domain.ErrUnknownKind and leaves t unchanged.
func (f *Factory) Build(t *Tree, kind domain.Kind, label string) (Space, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[kind]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("build %q: %w", kind, domain.ErrUnknownKind)
	}

	b := &Base{kind: kind, label: label, tree: t}
	s := ctor(b)
	if s == nil || s.base() != b {
		return nil, fmt.Errorf("build %q: constructor did not embed its base", kind)
	}
	t.registerSpace(s)
	return s, nil
}
