// Package traversal implements the DFS visitor and deferred ChangeSet
// mutation mechanism over internal/ast's Arena (spec §4.3). A pass queues
// structural edits as a ChangeSet while responding to a VisitGuard; the
// framework applies the queued edits between traversal events rather than
// mutating the arena mid-visit, so an in-progress DFS is never invalidated
// by the pass it is driving.
package traversal

import "github.com/ITesserakt/kodept/internal/ast"

// ChangeKind discriminates a Change the same way ast.Kind discriminates a
// node — a small closed enum, matched exhaustively wherever a ChangeSet is
// applied.
type ChangeKind int

const (
	ChangeDelete ChangeKind = iota
	ChangeAdd
	ChangeReplace
	ChangeDeleteSelf
)

// Change is one deferred structural edit (spec §4.3 "ChangeSet
// semantics"). Only the fields relevant to Kind are populated; Add and
// Replace reference a subtree a pass has already built into the arena
// (detached, no parent edge yet) rather than embedding the subtree's data
// inline — building through ast.Insert/ast.Attach and then handing the
// resulting id to a Change keeps subtree construction and subtree grafting
// as the same operation passes already use everywhere else in the arena
// API, instead of introducing a second, parallel way to describe a node.
type Change struct {
	Kind ChangeKind

	ParentID ast.AnyID // Delete, Add
	ChildID  ast.AnyID // Delete

	NewChild ast.AnyID   // Add: detached subtree root to graft
	Tag      ast.ChildTag // Add

	FromID        ast.AnyID // Replace
	ReplacementID ast.AnyID // Replace: detached subtree root

	NodeID ast.AnyID // DeleteSelf
}

// DeleteChild unlinks a specific child edge (spec §4.3 "Delete{parent_id,
// child_id}").
func DeleteChild(parent, child ast.AnyID) Change {
	return Change{Kind: ChangeDelete, ParentID: parent, ChildID: child}
}

// AddChild grafts a pre-built subtree at a parent slot (spec §4.3
// "Add{parent_id, child, tag}").
func AddChild(parent, newChild ast.AnyID, tag ast.ChildTag) Change {
	return Change{Kind: ChangeAdd, ParentID: parent, NewChild: newChild, Tag: tag}
}

// Replace substitutes a node (and its subtree) with a pre-built
// replacement, in place (spec §4.3 "Replace{from_id, to}").
func Replace(from, replacement ast.AnyID) Change {
	return Change{Kind: ChangeReplace, FromID: from, ReplacementID: replacement}
}

// DeleteSelf unlinks a node from its parent (spec §4.3 "DeleteSelf{node_id}").
func DeleteSelf(node ast.AnyID) Change {
	return Change{Kind: ChangeDeleteSelf, NodeID: node}
}

// ChangeSet is the deferred edit queue a pass returns from one visit.
// Order within the slice is insertion order, which Apply preserves within
// each change kind.
type ChangeSet []Change

// deleteTarget returns the node a Delete/DeleteSelf change removes.
func (c Change) deleteTarget() ast.AnyID {
	if c.Kind == ChangeDeleteSelf {
		return c.NodeID
	}
	return c.ChildID
}

// Apply performs every queued edit against arena, in the order spec §4.3
// mandates: deletions first (Delete and DeleteSelf together, insertion
// order), then replacements, then additions. If a Delete/DeleteSelf and a
// Replace target the same node, Replace wins and the delete becomes a
// no-op (spec §4.3 "Tie-break"). accessor, if non-nil, has its stale links
// dropped for every id Delete/Replace actually removes from the arena.
func Apply(arena *ast.Arena, accessor *ast.RLTAccessor, changes ChangeSet) {
	var deletes, replaces, adds []Change
	for _, c := range changes {
		switch c.Kind {
		case ChangeDelete, ChangeDeleteSelf:
			deletes = append(deletes, c)
		case ChangeReplace:
			replaces = append(replaces, c)
		case ChangeAdd:
			adds = append(adds, c)
		}
	}

	replaced := make(map[int]bool, len(replaces))
	for _, c := range replaces {
		replaced[c.FromID.RawID()] = true
	}

	for _, c := range deletes {
		target := c.deleteTarget()
		if replaced[target.RawID()] {
			continue
		}
		removed := ast.Delete(arena, target)
		if accessor != nil {
			accessor.Drop(removed)
		}
	}

	for _, c := range replaces {
		removed := ast.Replace(arena, c.FromID, c.ReplacementID)
		if accessor != nil {
			accessor.Drop(removed)
		}
	}

	for _, c := range adds {
		_ = ast.Attach(arena, c.ParentID, c.NewChild, c.Tag)
	}
}
