// Package scope builds the lexical scope tree a compilation unit's AST
// implies — one scope per lexical container (file, module, struct,
// function, let) — and resolves name references against it (spec §4.5).
package scope

import (
	"fmt"

	"github.com/ITesserakt/kodept/internal/ast"
)

// SymbolKind classifies what a Symbol names.
type SymbolKind int

const (
	SymbolModule SymbolKind = iota
	SymbolFunction
	SymbolStruct
	SymbolEnum
	SymbolParameter
	SymbolBinding
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolModule:
		return "module"
	case SymbolFunction:
		return "function"
	case SymbolStruct:
		return "struct"
	case SymbolEnum:
		return "enum"
	case SymbolParameter:
		return "parameter"
	case SymbolBinding:
		return "binding"
	default:
		return "unknown"
	}
}

// Symbol is one name bound within a Scope.
type Symbol struct {
	Kind          SymbolKind
	DeclarationID ast.AnyID
}

// DuplicateDefinitionError is returned by Scope.Define when name is
// already bound in that exact scope (spec §4.5 "Errors:
// DuplicateDefinition").
type DuplicateDefinitionError struct {
	Name     string
	Previous Symbol
}

func (e DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%q is already defined in this scope (as %s)", e.Name, e.Previous.Kind)
}

// UnresolvedReferenceError is returned by Scope.Resolve when no
// enclosing scope binds name (spec §4.5 "Errors: ... UnresolvedReference").
type UnresolvedReferenceError struct {
	Name string
}

func (e UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %q", e.Name)
}

// Scope owns one lexical container's symbol table and a link to its
// lexical parent (nil at the file scope).
type Scope struct {
	Owner   ast.AnyID
	parent  *Scope
	symbols map[string]Symbol
}

// newScope allocates an empty scope nested under parent (nil at the
// root).
func newScope(owner ast.AnyID, parent *Scope) *Scope {
	return &Scope{Owner: owner, parent: parent, symbols: make(map[string]Symbol)}
}

// Define binds name to sym in this scope. It fails with
// DuplicateDefinitionError if name is already bound here — shadowing an
// outer scope's binding of the same name is fine, only a redefinition
// within the same scope is an error.
func (s *Scope) Define(name string, sym Symbol) error {
	if existing, ok := s.symbols[name]; ok {
		return DuplicateDefinitionError{Name: name, Previous: existing}
	}
	s.symbols[name] = sym
	return nil
}

// Resolve looks up name in this scope, then walks outward through parent
// scopes; the first match wins (spec §4.5 "Name resolution walks
// outward; the first match wins").
func (s *Scope) Resolve(name string) (Symbol, error) {
	for sc := s; sc != nil; sc = sc.parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym, nil
		}
	}
	return Symbol{}, UnresolvedReferenceError{Name: name}
}

// ScopeTree is the full nest of Scopes built for one compilation unit,
// indexed by the AST node that owns each scope (spec §4.5 "The resolver
// populates a ScopeTree consumed by the type checker").
type ScopeTree struct {
	scopes map[int]*Scope
	root   *Scope
}

// NewScopeTree creates an empty tree whose root scope is owned by root
// (the FileDecl node).
func NewScopeTree(root ast.AnyID) *ScopeTree {
	rootScope := newScope(root, nil)
	return &ScopeTree{scopes: map[int]*Scope{root.RawID(): rootScope}, root: rootScope}
}

// Root returns the file-level scope.
func (t *ScopeTree) Root() *Scope {
	return t.root
}

// Nest creates a new scope owned by owner, lexically nested under
// parent, and records it in the tree.
func (t *ScopeTree) Nest(owner ast.AnyID, parent *Scope) *Scope {
	sc := newScope(owner, parent)
	t.scopes[owner.RawID()] = sc
	return sc
}

// ScopeOf returns the scope owned by the given node, if the builder
// created one for it (module, struct, function bodies do; terms,
// literals, etc. do not).
func (t *ScopeTree) ScopeOf(owner ast.AnyID) (*Scope, bool) {
	sc, ok := t.scopes[owner.RawID()]
	return sc, ok
}
