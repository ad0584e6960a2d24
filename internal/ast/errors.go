package ast

import "fmt"

// AlreadyAttachedError is returned by Arena.Attach when the child already
// has a parent edge (spec §4.1 "attach ... fails with AlreadyAttached if
// the child already has a parent"). It carries the ids of the child and of
// the parent it is already attached to; Kind is not set by Attach.
type AlreadyAttachedError struct {
	Kind     string
	ChildID  int
	ParentID int
}

func (e AlreadyAttachedError) Error() string {
	return fmt.Sprintf("node %d is already attached to parent %d", e.ChildID, e.ParentID)
}

// ConversionError is returned by TryAs when the arena slot's runtime Kind
// disagrees with the requested type (spec §4.1 "narrowing casts must not
// silently succeed on mismatched kinds").
type ConversionError struct {
	Expected string
	Actual   Kind
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("expected node of kind %s, got %s", e.Expected, e.Actual)
}

// UnknownNodeError is returned when an id does not resolve to any arena
// slot — either it was never inserted, or its node was later deleted by a
// ChangeSet.
type UnknownNodeError struct {
	ID int
}

func (e UnknownNodeError) Error() string {
	return fmt.Sprintf("no node with id %d in arena", e.ID)
}
