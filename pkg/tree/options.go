package tree

import (
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/google/uuid"
)

// Option defines a functional option for configuring a Tree.
type Option func(*Tree)

// WithLogger sets a structured logger. Tree events are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Tree) {
		t.hooks = hooks
	}
}

// WithFactory replaces the space factory used by NewSpace.
func WithFactory(f *Factory) Option {
	return func(t *Tree) {
		if f != nil {
			t.factory = f
		}
	}
}

// WithUUIDGenerator overrides how node UUIDs are generated (default: uuid.New).
func WithUUIDGenerator(gen func() uuid.UUID) Option {
	return func(t *Tree) {
		if gen != nil {
			t.newUUID = gen
		}
	}
}
