package traversal

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/ITesserakt/kodept/internal/ast"
)

// TestApplyOrdersDeletesThenReplacesThenAdds checks spec §4.3's ordering
// rule end to end, using go-test/deep for a structural comparison of the
// resulting child-id sequence rather than a field-by-field manual check.
func TestApplyOrdersDeletesThenReplacesThenAdds(t *testing.T) {
	arena := ast.NewArena()
	root, b, c := buildABC(arena)

	bPrime := ast.Cast[ast.GenericASTNode](ast.Insert[ast.Parameter](arena, ast.KindParameter, &ast.Parameter{Name: "B'"}))
	d := ast.Cast[ast.GenericASTNode](ast.Insert[ast.Parameter](arena, ast.KindParameter, &ast.Parameter{Name: "D"}))

	Apply(arena, nil, ChangeSet{
		DeleteChild(root, c),
		Replace(b, bPrime),
		AddChild(root, d, ast.TagParam),
	})

	gotParams := rawIDs(ast.Children(arena, root, ast.TagParam))
	wantParams := []int{bPrime.RawID(), d.RawID()}
	if diff := deep.Equal(gotParams, wantParams); diff != nil {
		t.Fatalf("unexpected TagParam children after Apply: %v", diff)
	}

	gotBody := rawIDs(ast.Children(arena, root, ast.TagBody))
	if diff := deep.Equal(gotBody, []int{}); diff != nil {
		t.Fatalf("expected c to be deleted from TagBody: %v", diff)
	}
}

func rawIDs(ids []ast.AnyID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id.RawID()
	}
	return out
}
