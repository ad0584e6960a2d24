package traversal

import (
	"context"

	"github.com/ITesserakt/kodept/internal/ast"
)

// VisitSide tells a pass where in a node's traversal it is being invoked
// (spec §4.3): a childless node produces one Leaf event; any other node
// produces Entering before its children are visited and Exiting after.
type VisitSide int

const (
	Entering VisitSide = iota
	Exiting
	Leaf
)

func (s VisitSide) String() string {
	switch s {
	case Entering:
		return "entering"
	case Exiting:
		return "exiting"
	case Leaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// VisitGuard is what a pass receives for one traversal event: which node,
// and from which side.
type VisitGuard struct {
	Node ast.AnyID
	Side VisitSide
}

// Outcome is what a pass hands back for one VisitGuard (spec §4.3 "A pass
// returns one of").
type Outcome int

const (
	Completed Outcome = iota
	Skipped
	Failed
)

// VisitResult is a pass's response to one VisitGuard.
type VisitResult struct {
	Outcome Outcome
	Changes ChangeSet
	Err     error
}

// Complete returns a Completed result carrying zero or more deferred edits.
func Complete(changes ChangeSet) VisitResult {
	return VisitResult{Outcome: Completed, Changes: changes}
}

// Skip returns a Skipped result: no edits, continue traversal.
func Skip() VisitResult {
	return VisitResult{Outcome: Skipped}
}

// Fail returns a Failed result: abort the traversal, surface err.
func Fail(err error) VisitResult {
	return VisitResult{Outcome: Failed, Err: err}
}

// Visitor is invoked once per traversal event.
type Visitor func(ctx context.Context, guard VisitGuard) VisitResult

// CanceledError wraps the error a Visitor returned via Fail, distinguishing
// a pass-initiated abort from a context cancellation.
type CanceledError struct {
	Err error
}

func (e CanceledError) Error() string {
	return e.Err.Error()
}

func (e CanceledError) Unwrap() error {
	return e.Err
}

// Run drives a single-threaded DFS from root, invoking visit for every
// node and applying the ChangeSet it returns before moving on to the next
// event (spec §4.3). accessor may be nil if the caller doesn't need stale
// RLT links dropped on delete/replace.
//
// Cancellation: if visit returns Failed, Run stops immediately — no
// further events are emitted, and the ChangeSet accumulated for the
// current event is discarded without being applied (spec §4.3
// "Cancellation"). If ctx is done, Run stops the same way with ctx.Err().
func Run(ctx context.Context, arena *ast.Arena, accessor *ast.RLTAccessor, root ast.AnyID, visit Visitor) error {
	return runNode(ctx, arena, accessor, root, visit)
}

func runNode(ctx context.Context, arena *ast.Arena, accessor *ast.RLTAccessor, node ast.AnyID, visit Visitor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	children := ast.ChildrenAll(arena, node)

	if len(children) == 0 {
		return dispatch(ctx, arena, accessor, node, Leaf, visit)
	}

	if err := dispatch(ctx, arena, accessor, node, Entering, visit); err != nil {
		return err
	}

	// Re-read children after Entering's ChangeSet has been applied, so
	// additions/deletions queued on Entering are visible to descent (spec
	// §4.3 "the traversal sees the post-mutation shape for not-yet-visited
	// descendants when the event was Entering").
	for _, child := range ast.ChildrenAll(arena, node) {
		if _, err := ast.Describe(arena, child); err != nil {
			// A sibling's ChangeSet deleted this child before we reached it.
			continue
		}
		if err := runNode(ctx, arena, accessor, child, visit); err != nil {
			return err
		}
	}

	return dispatch(ctx, arena, accessor, node, Exiting, visit)
}

func dispatch(ctx context.Context, arena *ast.Arena, accessor *ast.RLTAccessor, node ast.AnyID, side VisitSide, visit Visitor) error {
	if _, err := ast.Describe(arena, node); err != nil {
		// Node was removed by an earlier sibling's ChangeSet; nothing to visit.
		return nil
	}

	result := visit(ctx, VisitGuard{Node: node, Side: side})
	switch result.Outcome {
	case Failed:
		return CanceledError{Err: result.Err}
	case Completed:
		Apply(arena, accessor, result.Changes)
	}
	return nil
}
