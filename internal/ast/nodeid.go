// Package ast is the arena-allocated Abstract Syntax Tree: stable node
// identity, parent/child topology discriminated by ChildTag, and the
// RLT-lowering that builds it (spec §4.1, §4.2).
package ast

import "strconv"

// NodeId is a non-reusable arena index phantom-typed by the node kind the
// caller expects to find there. The phantom parameter buys compile-time
// ergonomics only — Go generics can't carry it into the arena's storage,
// so at runtime the Kind tag on the stored GenericASTNode is authoritative
// (spec §4.1 "Algorithmic notes"), and TryAs re-checks it on every
// narrowing access.
type NodeId[K any] struct {
	index int
}

// rawID is the untyped form the arena actually indexes by.
func (id NodeId[K]) rawID() int {
	return id.index
}

// RawID exposes the untyped arena index for packages outside ast that need
// to key their own side-tables by node identity (e.g. traversal's
// ChangeSet conflict resolution).
func (id NodeId[K]) RawID() int {
	return id.index
}

func (id NodeId[K]) String() string {
	return strconv.Itoa(id.index)
}

// newNodeId builds a typed id around a raw arena index. Unexported: callers
// only ever receive ids back from Arena operations.
func newNodeId[K any](index int) NodeId[K] {
	return NodeId[K]{index: index}
}

// Cast reinterprets an id as referring to a different expected kind without
// touching the arena. It does not check anything — it exists so call sites
// that box a concrete id into a GenericASTNode id (e.g. to build a Change)
// can do so without an arena round-trip. Mirrors NodeId::cast in the
// original, and carries the same soundness obligation: the caller must
// already know the runtime kind agrees, or be prepared for a later TryAs to
// fail.
func Cast[U any, T any](id NodeId[T]) NodeId[U] {
	return newNodeId[U](id.rawID())
}

// AnyID is shorthand for the untyped id ChangeSet and the traversal
// framework pass around.
type AnyID = NodeId[GenericASTNode]
