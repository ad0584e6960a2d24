package macro

import (
	"context"
	"testing"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/traversal"
)

// recordingMacro focuses on one kind and records every node it was
// invoked for; optionally reports an error on its first invocation.
type recordingMacro struct {
	kind        ast.Kind
	reportError bool
	invocations *[]string
	name        string
}

func (m recordingMacro) Focus() []ast.Kind {
	return []ast.Kind{m.kind}
}

func (m recordingMacro) Apply(guard traversal.VisitGuard, ctx *Context) traversal.VisitResult {
	*m.invocations = append(*m.invocations, m.name)
	if m.reportError {
		ctx.Reporter.Report(diag.SeverityError, "KC001", "synthetic failure", nil, ctx.Path)
	}
	return traversal.Skip()
}

// TestPipelineSameStageRunsDespiteError is scenario 6: P1 reports an
// error, P2 in the same stage still runs, P3 in the next stage is
// skipped.
func TestPipelineSameStageRunsDespiteError(t *testing.T) {
	arena := ast.NewArena()
	root := ast.Insert[ast.ModDecl](arena, ast.KindModDecl, &ast.ModDecl{Name: "M", IsGlobal: true})
	fn := ast.Insert[ast.BodiedFunction](arena, ast.KindBodiedFunction, &ast.BodiedFunction{Name: "f"})
	_ = ast.Attach(arena, root, fn, ast.TagTopLevel)

	var invocations []string
	p1 := recordingMacro{kind: ast.KindBodiedFunction, reportError: true, invocations: &invocations, name: "P1"}
	p2 := recordingMacro{kind: ast.KindBodiedFunction, invocations: &invocations, name: "P2"}
	p3 := recordingMacro{kind: ast.KindBodiedFunction, invocations: &invocations, name: "P3"}

	pipeline := NewPipeline(Stage{p1, p2}, Stage{p3})
	mctx := &Context{Arena: arena, RLT: ast.NewRLTAccessor(), Reporter: diag.NewReporter(), Path: position.CodePath{Kind: position.ToMemory, Name: "test"}}

	if err := pipeline.Run(context.Background(), mctx, ast.Cast[ast.GenericASTNode](root)); err != nil {
		t.Fatalf("pipeline run returned error: %v", err)
	}

	if len(invocations) != 2 || invocations[0] != "P1" || invocations[1] != "P2" {
		t.Fatalf("expected P1 then P2 to run, got %v", invocations)
	}
	if !mctx.Reporter.HasErrors() {
		t.Fatal("expected the reporter to hold an error after stage 1")
	}
}

// TestFocusSkipsUnrelatedKinds checks that a Macro never sees a node
// outside its Focus set.
func TestFocusSkipsUnrelatedKinds(t *testing.T) {
	arena := ast.NewArena()
	root := ast.Insert[ast.ModDecl](arena, ast.KindModDecl, &ast.ModDecl{Name: "M", IsGlobal: true})
	param := ast.Insert[ast.Parameter](arena, ast.KindParameter, &ast.Parameter{Name: "x"})
	_ = ast.Attach(arena, root, param, ast.TagParam)

	var invocations []string
	onlyFunctions := recordingMacro{kind: ast.KindBodiedFunction, invocations: &invocations, name: "only-fn"}
	mctx := &Context{Arena: arena, RLT: ast.NewRLTAccessor(), Reporter: diag.NewReporter(), Path: position.CodePath{Kind: position.ToMemory, Name: "test"}}

	if err := Run(context.Background(), onlyFunctions, mctx, ast.Cast[ast.GenericASTNode](root)); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if len(invocations) != 0 {
		t.Fatalf("expected no invocations for a ModDecl/Parameter-only tree, got %v", invocations)
	}
}
