package domain

import "fmt"

// NodeID addresses a node inside a single tree. Handles start at 1.
type NodeID int

// SpaceID addresses a space inside a single tree. Handles start at 1.
type SpaceID int

const (
	// NoNode is the zero handle, used when a node reference is unset.
	NoNode NodeID = 0
	// NoSpace is the zero handle, used when a space reference is unset.
	NoSpace SpaceID = 0
)

// Valid reports whether the handle has been assigned.
func (id NodeID) Valid() bool { return id > NoNode }

func (id NodeID) String() string { return fmt.Sprintf("n%d", int(id)) }

// Valid reports whether the handle has been assigned.
func (id SpaceID) Valid() bool { return id > NoSpace }

func (id SpaceID) String() string { return fmt.Sprintf("s%d", int(id)) }

// Kind selects the space variant built by a factory.
type Kind string

// Kind constants define the built-in space variants.
const (
	// KindAction is a space whose options are chosen by the decision maker.
	KindAction Kind = "action"
	// KindChance is a space whose options are chosen by nature, each carrying a probability.
	KindChance Kind = "chance"
)

// RootLabel is the option label reported by a node that has no parent space.
const RootLabel = "Root"
