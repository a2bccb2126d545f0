package domain

import "errors"

// ErrUnknownKind is returned when a factory is asked to build a kind it has no constructor for.
var ErrUnknownKind = errors.New("unknown space kind")

// ErrKindConflict is returned when a kind is registered twice in the same factory.
var ErrKindConflict = errors.New("space kind already registered")

// ErrInvalidOption is returned when an option index does not address an option of its space.
var ErrInvalidOption = errors.New("invalid option index")

// ErrNodeNotFound is returned when a node handle does not belong to the tree.
var ErrNodeNotFound = errors.New("node not found")

// ErrSpaceNotFound is returned when a space handle does not belong to the tree.
var ErrSpaceNotFound = errors.New("space not found")

// ErrForeignSpace is returned when a node is linked to a space created by another tree.
var ErrForeignSpace = errors.New("space belongs to another tree")
