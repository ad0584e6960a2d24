package hminfer

import (
	"testing"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/rlt"
)

func lowerFunction(t *testing.T, source string) (*ast.Arena, ast.NodeId[ast.BodiedFunction]) {
	t.Helper()
	file, err := rlt.Parse(source)
	if err != nil {
		t.Fatalf("parsing %q: %v", source, err)
	}
	arena, root, _ := ast.Lower(file)
	mods := ast.Children(arena, root, ast.TagModule)
	tops := ast.Children(arena, mods[0], ast.TagTopLevel)
	return arena, ast.Cast[ast.BodiedFunction](tops[0])
}

// TestTranslateAndInferIdentity runs the full pipeline (parse -> lower
// -> translate -> infer) for scenario 1.
func TestTranslateAndInferIdentity(t *testing.T) {
	arena, fn := lowerFunction(t, "fun id(x) => x")

	expr, err := Translate(arena, fn)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	env := NewEnvironment()
	s, mono, err := Infer(env, Empty(), expr)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	mono = s.Apply(mono)

	if mono.Kind != MonoArrow || mono.From.Var != mono.To.Var {
		t.Fatalf("expected a -> a, got %s", mono)
	}
}

// TestTranslateAndInferApplication runs the pipeline for scenario 2.
func TestTranslateAndInferApplication(t *testing.T) {
	arena, fn := lowerFunction(t, "fun apply(f, x) => f(x)")

	expr, err := Translate(arena, fn)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	env := NewEnvironment()
	s, mono, err := Infer(env, Empty(), expr)
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	mono = s.Apply(mono)

	if mono.Kind != MonoArrow || mono.From.Kind != MonoArrow {
		t.Fatalf("expected (a -> b) -> a -> b, got %s", mono)
	}
}

// TestTranslateOperationDesugarsToCurriedApp checks that an Operation
// node (`a + b`) translates to App(App(Var("+"), a), b).
func TestTranslateOperationDesugarsToCurriedApp(t *testing.T) {
	arena, fn := lowerFunction(t, "fun f(a, b) => a + b")

	expr, err := Translate(arena, fn)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	// Unwrap the two Lambda layers for a and b.
	if expr.Kind != ExprLambda || expr.Body.Kind != ExprLambda {
		t.Fatalf("expected two curried lambdas, got %+v", expr)
	}
	body := expr.Body.Body
	if body.Kind != ExprApp || body.Func.Kind != ExprApp {
		t.Fatalf("expected a curried App(App(+, a), b), got %+v", body)
	}
	if body.Func.Func.Kind != ExprVar || body.Func.Func.Name != "+" {
		t.Fatalf("expected the operator name %q, got %+v", "+", body.Func.Func)
	}
}
