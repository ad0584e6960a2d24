package scope

import (
	"testing"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/rlt"
)

func mustLower(t *testing.T, source string) (*ast.Arena, ast.AnyID) {
	t.Helper()
	file, err := rlt.Parse(source)
	if err != nil {
		t.Fatalf("parsing %q: %v", source, err)
	}
	arena, root, _ := ast.Lower(file)
	return arena, ast.Cast[ast.GenericASTNode](root)
}

func newReporter() (*diag.Reporter, position.CodePath) {
	return diag.NewReporter(), position.CodePath{Kind: position.ToMemory, Name: "test"}
}

// TestParameterResolvesWithinFunctionBody checks a function's own
// parameter is visible in its body.
func TestParameterResolvesWithinFunctionBody(t *testing.T) {
	arena, root := mustLower(t, "fun id(x) => x")
	reporter, path := newReporter()

	Build(arena, root, reporter, path)

	if reporter.HasErrors() {
		t.Fatalf("expected no errors, got %+v", reporter.All())
	}
}

// TestUnresolvedReferenceReported checks a body referencing an unbound
// name is caught.
func TestUnresolvedReferenceReported(t *testing.T) {
	arena, root := mustLower(t, "fun f(x) => y")
	reporter, path := newReporter()

	Build(arena, root, reporter, path)

	if !reporter.HasErrors() {
		t.Fatal("expected an unresolved-reference error")
	}
}

// TestSiblingFunctionsResolveEachOther checks that two top-level
// functions in the same module can call one another regardless of
// declaration order (name resolution isn't single-pass top-to-bottom).
func TestSiblingFunctionsResolveEachOther(t *testing.T) {
	arena, root := mustLower(t, "module M { fun a(x) => b(x) fun b(x) => x }")
	reporter, path := newReporter()

	Build(arena, root, reporter, path)

	if reporter.HasErrors() {
		t.Fatalf("expected no errors, got %+v", reporter.All())
	}
}

// TestDuplicateParameterIsReported checks a function with two
// same-named parameters reports DuplicateDefinition.
func TestDuplicateParameterIsReported(t *testing.T) {
	arena, root := mustLower(t, "fun f(x, x) => x")
	reporter, path := newReporter()

	Build(arena, root, reporter, path)

	if !reporter.HasErrors() {
		t.Fatal("expected a duplicate-definition error")
	}
}

// TestScopeResolveWalksOutward is a direct unit test of Scope.Resolve's
// shadowing behavior, independent of the AST builder.
func TestScopeResolveWalksOutward(t *testing.T) {
	root := ast.AnyID{}
	outer := newScope(root, nil)
	if err := outer.Define("x", Symbol{Kind: SymbolBinding}); err != nil {
		t.Fatalf("unexpected define error: %v", err)
	}

	inner := newScope(root, outer)
	if _, err := inner.Resolve("x"); err != nil {
		t.Fatalf("expected inner scope to see outer binding, got %v", err)
	}

	if err := inner.Define("x", Symbol{Kind: SymbolParameter}); err != nil {
		t.Fatalf("shadowing an outer binding should not error: %v", err)
	}
	sym, err := inner.Resolve("x")
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if sym.Kind != SymbolParameter {
		t.Fatalf("expected the inner shadowing definition to win, got %v", sym.Kind)
	}

	if _, err := inner.Resolve("nowhere"); err == nil {
		t.Fatal("expected an UnresolvedReferenceError")
	}
}
