// Package macro is the pluggable analysis-pass framework (spec §4.4): a
// Macro reacts to a subset of node kinds, a Context gives it read/write
// arena access plus diagnostics, and a Pipeline runs a sequence of Macros
// over one AST, stopping at the first stage that reports an error.
package macro

import (
	"context"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/traversal"
)

// Context is what a Macro's Apply receives: arena access, the RLT
// accessor, a diagnostic Reporter, and the path of the file being
// compiled (spec §4.4 "The Context offered to a pass exposes..."). A pass
// must not keep a Context, or anything reachable through it, across two
// separate Apply invocations.
type Context struct {
	Arena    *ast.Arena
	RLT      *ast.RLTAccessor
	Reporter *diag.Reporter
	Path     position.CodePath
}

// Macro is one analysis/transformation pass.
type Macro interface {
	// Focus returns the node kinds this pass reacts to. The framework
	// skips the Apply call entirely for any other kind — "events for
	// other kinds are skipped by the framework without invoking the
	// pass" (spec §4.4).
	Focus() []ast.Kind
	// Apply runs the pass against one VisitGuard.
	Apply(guard traversal.VisitGuard, ctx *Context) traversal.VisitResult
}

// focusSet turns a Macro's Focus slice into a lookup set, computed once
// per Run rather than once per node.
func focusSet(m Macro) map[ast.Kind]struct{} {
	set := make(map[ast.Kind]struct{}, len(m.Focus()))
	for _, k := range m.Focus() {
		set[k] = struct{}{}
	}
	return set
}

// Run drives one Macro's traversal.Visitor over the whole AST rooted at
// root, skipping nodes whose kind isn't in the pass's focus set.
func Run(ctx context.Context, m Macro, mctx *Context, root ast.AnyID) error {
	focus := focusSet(m)
	visitor := func(_ context.Context, guard traversal.VisitGuard) traversal.VisitResult {
		kind, err := ast.Describe(mctx.Arena, guard.Node)
		if err != nil {
			return traversal.Skip()
		}
		if _, ok := focus[kind]; !ok {
			return traversal.Skip()
		}
		return m.Apply(guard, mctx)
	}
	return traversal.Run(ctx, mctx.Arena, mctx.RLT, root, visitor)
}

// Stage is a set of Macros that all run unconditionally once the stage
// starts — one pass reporting an error does not stop a sibling pass in
// the same stage from running (spec §8 scenario 6: "pass P2 in the same
// stage still runs; errors are recoverable"). Reporter.HasErrors() is
// only consulted between stages.
type Stage []Macro

// Pipeline composes an ordered sequence of Stages over the same AST (spec
// §4.4 "Pipeline composes a heterogeneous tuple of passes and runs them in
// order"). Go has no heterogeneous tuple, so Pipeline is a plain slice of
// Stages — the teacher's query package uses the same interface-slice
// composition for chaining composite queries
// (internal/query/composite_queries.go).
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a Pipeline running stages in the given order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order against the same Context. Within a
// stage every Macro runs regardless of what an earlier Macro in that same
// stage reported; a Failed traversal aborts the whole pipeline
// immediately, within a stage or not; and between stages, an
// error-severity Report accumulated so far stops the pipeline before the
// next stage starts (spec §4.4 "A pipeline fails fast on
// Failed; Reporter.has_errors() after a Completed run causes the
// enclosing driver to stop before the next pipeline stage").
func (p *Pipeline) Run(ctx context.Context, mctx *Context, root ast.AnyID) error {
	for _, stage := range p.stages {
		for _, m := range stage {
			if err := Run(ctx, m, mctx, root); err != nil {
				return err
			}
		}
		if mctx.Reporter.HasErrors() {
			return nil
		}
	}
	return nil
}
