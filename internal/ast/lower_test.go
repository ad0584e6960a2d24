package ast

import (
	"testing"

	"github.com/ITesserakt/kodept/internal/rlt"
)

func mustParse(t *testing.T, source string) *rlt.File {
	t.Helper()
	file, err := rlt.Parse(source)
	if err != nil {
		t.Fatalf("parsing %q: %v", source, err)
	}
	return file
}

// TestLowerIdentityLambda is scenario 1 from the testable-properties list:
// a bare top-level function with no module wrapper lowers to
// FileDecl -> ModDecl(Global) -> BodiedFunction(id, params=[x], body=Term(x)).
func TestLowerIdentityLambda(t *testing.T) {
	file := mustParse(t, "fun id(x) => x")
	arena, root, accessor := Lower(file)

	mods := Children(arena, root, TagModule)
	if len(mods) != 1 {
		t.Fatalf("expected 1 module, got %d", len(mods))
	}
	mod, err := TryAs[ModDecl](arena, mods[0])
	if err != nil {
		t.Fatalf("expected ModDecl, got %v", err)
	}
	if !mod.IsGlobal {
		t.Fatal("expected the implicit module to be Global")
	}

	tops := Children(arena, mods[0], TagTopLevel)
	if len(tops) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(tops))
	}
	fn, err := TryAs[BodiedFunction](arena, tops[0])
	if err != nil {
		t.Fatalf("expected BodiedFunction, got %v", err)
	}
	if fn.Name != "id" {
		t.Fatalf("expected function name %q, got %q", "id", fn.Name)
	}

	params := Children(arena, tops[0], TagParam)
	if len(params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(params))
	}
	param, err := TryAs[Parameter](arena, params[0])
	if err != nil {
		t.Fatalf("expected Parameter, got %v", err)
	}
	if param.Name != "x" {
		t.Fatalf("expected param name %q, got %q", "x", param.Name)
	}

	bodies := Children(arena, tops[0], TagBody)
	if len(bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(bodies))
	}
	ref, err := TryAs[TermReference](arena, bodies[0])
	if err != nil {
		t.Fatalf("expected TermReference body, got %v", err)
	}
	if ref.Name != "x" || ref.IsTypeName {
		t.Fatalf("expected body to reference identifier %q, got %+v", "x", ref)
	}

	if _, ok := accessor.AccessUnknown(tops[0]); !ok {
		t.Fatal("expected an RLT link for the lowered function")
	}
}

// TestLowerApplication is scenario 2: `fun apply(f, x) => f(x)`.
func TestLowerApplication(t *testing.T) {
	file := mustParse(t, "fun apply(f, x) => f(x)")
	arena, root, _ := Lower(file)

	mods := Children(arena, root, TagModule)
	tops := Children(arena, mods[0], TagTopLevel)
	fn, err := TryAs[BodiedFunction](arena, tops[0])
	if err != nil {
		t.Fatalf("expected BodiedFunction, got %v", err)
	}
	if fn.Name != "apply" {
		t.Fatalf("expected function name %q, got %q", "apply", fn.Name)
	}

	bodies := Children(arena, tops[0], TagBody)
	app, err := TryAs[Application](arena, bodies[0])
	if err != nil {
		t.Fatalf("expected Application body, got %v", err)
	}
	_ = app

	targets := Children(arena, bodies[0], TagCallTarget)
	if len(targets) != 1 {
		t.Fatalf("expected 1 call target, got %d", len(targets))
	}
	target, err := TryAs[TermReference](arena, targets[0])
	if err != nil {
		t.Fatalf("expected TermReference call target, got %v", err)
	}
	if target.Name != "f" {
		t.Fatalf("expected call target %q, got %q", "f", target.Name)
	}

	args := Children(arena, bodies[0], TagCallArg)
	if len(args) != 1 {
		t.Fatalf("expected 1 call arg, got %d", len(args))
	}
	arg, err := TryAs[TermReference](arena, args[0])
	if err != nil {
		t.Fatalf("expected TermReference arg, got %v", err)
	}
	if arg.Name != "x" {
		t.Fatalf("expected call arg %q, got %q", "x", arg.Name)
	}
}

// TestLowerOperationChainIsLeftAssociative checks `a + b - c` desugars to
// Operation(Operation(a, +, b), -, c), per spec §4.6's note that binary
// operators desugar to two-operand applications.
func TestLowerOperationChainIsLeftAssociative(t *testing.T) {
	file := mustParse(t, "fun f(a, b, c) => a + b - c")
	arena, root, _ := Lower(file)

	mods := Children(arena, root, TagModule)
	tops := Children(arena, mods[0], TagTopLevel)
	bodies := Children(arena, tops[0], TagBody)

	outer, err := TryAs[Operation](arena, bodies[0])
	if err != nil {
		t.Fatalf("expected outer Operation, got %v", err)
	}
	if outer.Operator != "-" {
		t.Fatalf("expected outer operator %q, got %q", "-", outer.Operator)
	}

	operands := Children(arena, bodies[0], TagOperand)
	if len(operands) != 2 {
		t.Fatalf("expected 2 operands, got %d", len(operands))
	}
	inner, err := TryAs[Operation](arena, operands[0])
	if err != nil {
		t.Fatalf("expected inner Operation on the left, got %v", err)
	}
	if inner.Operator != "+" {
		t.Fatalf("expected inner operator %q, got %q", "+", inner.Operator)
	}
	if _, err := TryAs[TermReference](arena, operands[1]); err != nil {
		t.Fatalf("expected right operand to be a bare TermReference, got %v", err)
	}
}

// TestLowerExplicitModule covers the Ordinary module form and an explicit
// non-singleton tuple expression.
func TestLowerExplicitModule(t *testing.T) {
	file := mustParse(t, "module Utils { fun pair(a, b) => (a, b) }")
	arena, root, _ := Lower(file)

	mods := Children(arena, root, TagModule)
	if len(mods) != 1 {
		t.Fatalf("expected 1 module, got %d", len(mods))
	}
	mod, err := TryAs[ModDecl](arena, mods[0])
	if err != nil {
		t.Fatalf("expected ModDecl, got %v", err)
	}
	if mod.IsGlobal || mod.Name != "Utils" {
		t.Fatalf("expected Ordinary module named Utils, got %+v", mod)
	}

	tops := Children(arena, mods[0], TagTopLevel)
	bodies := Children(arena, tops[0], TagBody)
	if _, err := TryAs[TupleExpr](arena, bodies[0]); err != nil {
		t.Fatalf("expected a 2-element TupleExpr body, got %v", err)
	}
	elements := Children(arena, bodies[0], TagTupleElement)
	if len(elements) != 2 {
		t.Fatalf("expected 2 tuple elements, got %d", len(elements))
	}
}

// TestLowerParenthesizedGroupingIsNotATuple checks the single-element
// parenthesized-expression rule: `(x)` is a grouping around `x`, not a
// 1-tuple, so no TupleExpr node should appear.
func TestLowerParenthesizedGroupingIsNotATuple(t *testing.T) {
	file := mustParse(t, "fun f(x) => (x)")
	arena, root, _ := Lower(file)

	mods := Children(arena, root, TagModule)
	tops := Children(arena, mods[0], TagTopLevel)
	bodies := Children(arena, tops[0], TagBody)

	if _, err := TryAs[TermReference](arena, bodies[0]); err != nil {
		t.Fatalf("expected the grouped body to collapse to a bare TermReference, got %v", err)
	}
}
