package dsl

import "errors"

var (
	// ErrNoRoot is returned by Build when no root space was declared.
	ErrNoRoot = errors.New("no root space")
	// ErrUndeclaredSpace is returned when a label does not name a declared space.
	ErrUndeclaredSpace = errors.New("undeclared space")
	// ErrUndeclaredOption is returned when a branch names an option its space does not have.
	ErrUndeclaredOption = errors.New("undeclared option")
	// ErrKindMismatch is returned when a label is declared with two kinds, or an
	// option is added with the other kind's method.
	ErrKindMismatch = errors.New("space kind mismatch")
	// ErrDuplicateBranch is returned when the same option is given two target spaces.
	ErrDuplicateBranch = errors.New("duplicate branch")
	// ErrSpaceReused is returned when branches form a cycle, so a space would be
	// reached again after it was expanded.
	ErrSpaceReused = errors.New("space reached after expansion")
)
