package ast

import "log/slog"

// RLTAccessor is the side-table linking an AST node back to the RLT node it
// was lowered from (spec §4.2 "RLTAccessor side-table"). It is populated
// only during lowering; afterwards the only change made to it is Drop,
// which ChangeSet application calls for nodes it deleted or replaced.
//
// No example repo in the corpus carries a dedicated logging dependency
// (checked every go.mod in the pack), so the miss-warning below uses
// log/slog from the standard library rather than a third-party logger;
// see DESIGN.md.
type RLTAccessor struct {
	links map[int]any
}

// NewRLTAccessor returns an empty accessor.
func NewRLTAccessor() *RLTAccessor {
	return &RLTAccessor{links: make(map[int]any)}
}

// link records that astID was lowered from rltNode. Unexported: only
// lower.go populates the table.
func (r *RLTAccessor) link(astID AnyID, rltNode any) {
	r.links[astID.rawID()] = rltNode
}

// Access narrows the RLT link for astID to the expected RLT node type T. It
// returns ok=false both when there is no link at all and when the link is
// of a different RLT type — callers that need to distinguish the two
// should use AccessUnknown instead.
func Access[T any](r *RLTAccessor, astID AnyID) (*T, bool) {
	raw, ok := r.links[astID.rawID()]
	if !ok {
		slog.Warn("no RLT link for AST node", "node", astID.String())
		return nil, false
	}
	node, ok := raw.(*T)
	return node, ok
}

// AccessUnknown returns the untyped RLT link for astID, if any (spec §4.2
// "access_unknown(ast_id) -> Option<RLTFamily>").
func (r *RLTAccessor) AccessUnknown(astID AnyID) (any, bool) {
	raw, ok := r.links[astID.rawID()]
	if !ok {
		slog.Warn("no RLT link for AST node", "node", astID.String())
		return nil, false
	}
	return raw, true
}

// Drop removes the RLT links for ids that have left the arena (spec §3
// "the RLT side-table drops stale entries"). Callers pass the ids returned
// by ast.Delete/ast.Replace.
func (r *RLTAccessor) Drop(ids []AnyID) {
	for _, id := range ids {
		delete(r.links, id.rawID())
	}
}
