package hminfer

import "fmt"

// InferError is the Kind/Message discriminated error every failure mode
// in this package uses, the same idiom internal/graph/errors.go applies
// to its own closed error set.
type InferError struct {
	Kind    string
	Message string
}

func (e InferError) Error() string {
	return fmt.Sprintf("inference error (%v): %v", e.Kind, e.Message)
}

// Unbound is Algorithm W's failure when a Var isn't in scope.
func Unbound(name string) error {
	return InferError{Kind: "Unbound", Message: fmt.Sprintf("unbound variable %q", name)}
}

// CannotUnify is Algorithm U's catch-all mismatch failure.
func CannotUnify(a, b Monomorphic) error {
	return InferError{Kind: "CannotUnify", Message: fmt.Sprintf("cannot unify %s with %s", a, b)}
}

// InfiniteType is the occurs-check failure: v occurs free in t.
func InfiniteType(v VarID, t Monomorphic) error {
	return InferError{Kind: "InfiniteType", Message: fmt.Sprintf("%s occurs in %s", v, t)}
}

// ArityMismatch is unify's tuple-length failure.
func ArityMismatch(expected, actual int) error {
	return InferError{Kind: "ArityMismatch", Message: fmt.Sprintf("expected %d elements, got %d", expected, actual)}
}
