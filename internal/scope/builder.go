package scope

import (
	"context"
	"fmt"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/traversal"
)

// builder drives one DFS over an AST, pushing a Scope on entering a
// lexical container and popping it on exit, the same stack-of-scopes
// shape a recursive-descent resolver would use (spec §4.5).
type builder struct {
	arena    *ast.Arena
	reporter *diag.Reporter
	path     position.CodePath
	tree     *ScopeTree
	stack    []*Scope
	refs     []pendingRef
}

// pendingRef is a TermReference seen during the walk, paired with the
// scope it appeared in; Build resolves it once every scope is complete.
type pendingRef struct {
	scope *Scope
	name  string
}

func (b *builder) top() *Scope {
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(owner ast.AnyID) {
	b.stack = append(b.stack, b.tree.Nest(owner, b.top()))
}

func (b *builder) pop() {
	b.stack = b.stack[:len(b.stack)-1]
}

// ownsScope reports whether kind introduces its own nested scope rather
// than just contributing a binding to its enclosing one.
func ownsScope(kind ast.Kind) bool {
	switch kind {
	case ast.KindModDecl, ast.KindStructDecl, ast.KindBodiedFunction, ast.KindLetExpr:
		return true
	default:
		return false
	}
}

func (b *builder) define(name string, kind SymbolKind, decl ast.AnyID) {
	if name == "" {
		return
	}
	if err := b.top().Define(name, Symbol{Kind: kind, DeclarationID: decl}); err != nil {
		b.reporter.Report(diag.SeverityError, "KC201", err.Error(), nil, b.path)
	}
}

// Build walks the whole AST rooted at file, constructing a ScopeTree and
// resolving every TermReference against it; unresolved references and
// duplicate definitions are recorded on reporter rather than returned as
// errors, matching how every other pass in this pipeline surfaces
// problems (spec §4.4's Reporter, reused here rather than introduced
// afresh for this one pass). References are resolved after the walk, so a
// name may be used before the declaration that binds it.
func Build(arena *ast.Arena, file ast.AnyID, reporter *diag.Reporter, path position.CodePath) *ScopeTree {
	tree := NewScopeTree(file)
	b := &builder{arena: arena, reporter: reporter, path: path, tree: tree, stack: []*Scope{tree.Root()}}

	// FileDecl itself isn't in onEnter's switch, so its own Entering/Exiting
	// (or Leaf, for an empty file) events are no-ops; tree.Root() already
	// is its scope.
	visit := func(_ context.Context, guard traversal.VisitGuard) traversal.VisitResult {
		return b.visit(guard)
	}

	_ = traversal.Run(context.Background(), arena, nil, file, visit)
	for _, ref := range b.refs {
		if _, err := ref.scope.Resolve(ref.name); err != nil {
			b.reporter.Report(diag.SeverityError, "KC202", fmt.Sprintf("unresolved reference %q", ref.name), nil, b.path)
		}
	}
	return tree
}

func (b *builder) visit(guard traversal.VisitGuard) traversal.VisitResult {
	kind, err := ast.Describe(b.arena, guard.Node)
	if err != nil {
		return traversal.Skip()
	}

	switch guard.Side {
	case traversal.Entering:
		b.onEnter(kind, guard.Node)
	case traversal.Leaf:
		b.onEnter(kind, guard.Node)
		b.onLeaf(kind, guard.Node)
		if ownsScope(kind) {
			b.pop()
		}
	case traversal.Exiting:
		if ownsScope(kind) {
			b.pop()
		}
	}
	return traversal.Skip()
}

// onEnter defines the declaration (if any) in the enclosing scope and
// pushes a fresh scope for kinds that own one.
func (b *builder) onEnter(kind ast.Kind, id ast.AnyID) {
	switch kind {
	case ast.KindModDecl:
		if mod, err := ast.TryAs[ast.ModDecl](b.arena, id); err == nil {
			b.define(mod.Name, SymbolModule, id)
		}
		b.push(id)
	case ast.KindStructDecl:
		if s, err := ast.TryAs[ast.StructDecl](b.arena, id); err == nil {
			b.define(s.Name, SymbolStruct, id)
		}
		b.push(id)
	case ast.KindEnumDecl:
		if e, err := ast.TryAs[ast.EnumDecl](b.arena, id); err == nil {
			b.define(e.Name, SymbolEnum, id)
			for _, variant := range e.Variants {
				b.define(variant, SymbolEnum, id)
			}
		}
	case ast.KindBodiedFunction:
		if fn, err := ast.TryAs[ast.BodiedFunction](b.arena, id); err == nil {
			b.define(fn.Name, SymbolFunction, id)
		}
		b.push(id)
	case ast.KindParameter:
		if p, err := ast.TryAs[ast.Parameter](b.arena, id); err == nil {
			b.define(p.Name, SymbolParameter, id)
		}
	case ast.KindLetExpr:
		if let, err := ast.TryAs[ast.LetExpr](b.arena, id); err == nil {
			b.push(id)
			b.define(let.Name, SymbolBinding, id)
			return
		}
		b.push(id)
	}
}

func (b *builder) onLeaf(kind ast.Kind, id ast.AnyID) {
	if kind != ast.KindTermReference {
		return
	}
	ref, err := ast.TryAs[ast.TermReference](b.arena, id)
	if err != nil {
		return
	}
	b.refs = append(b.refs, pendingRef{scope: b.top(), name: ref.Name})
}
