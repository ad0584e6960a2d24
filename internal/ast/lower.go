package ast

import (
	"fmt"

	"github.com/ITesserakt/kodept/internal/rlt"
)

// Lower runs the recursive RLT→AST conversion (spec §4.2): every RLT node
// produces a freshly-built AST subtree, inserted into a shared Arena, with
// a link recorded into the returned RLTAccessor. Lowering never fails on a
// well-formed RLT — parse errors are caught earlier by rlt.Parse — so Lower
// has no error return, mirroring the teacher's internal/dsl/convert.go
// which likewise walks an already-validated tree unconditionally.
func Lower(file *rlt.File) (*Arena, NodeId[FileDecl], *RLTAccessor) {
	b := &lowering{arena: NewArena(), accessor: NewRLTAccessor()}
	root := b.lowerFile(file)
	return b.arena, root, b.accessor
}

type lowering struct {
	arena    *Arena
	accessor *RLTAccessor
}

func (b *lowering) insert(kind Kind, payload any, rltNode any) AnyID {
	id := Insert[GenericASTNode](b.arena, kind, payload)
	b.accessor.link(id, rltNode)
	return id
}

func (b *lowering) lowerFile(f *rlt.File) NodeId[FileDecl] {
	root := Cast[FileDecl](b.insert(KindFileDecl, &FileDecl{}, f))
	for _, m := range f.Modules {
		mod := b.lowerModule(m)
		_ = Attach(b.arena, root, mod, TagModule)
	}
	return root
}

func (b *lowering) lowerModule(m *rlt.Module) AnyID {
	switch {
	case m.Global != nil:
		name := ""
		if m.Global.Header != nil {
			name = m.Global.Header.Id
		}
		id := b.insert(KindModDecl, &ModDecl{Name: name, IsGlobal: true}, m.Global)
		for _, tl := range m.Global.Rest {
			b.attachTopLevel(id, tl)
		}
		return id
	case m.Ordinary != nil:
		id := b.insert(KindModDecl, &ModDecl{Name: m.Ordinary.Id, IsGlobal: false}, m.Ordinary)
		for _, tl := range m.Ordinary.Rest {
			b.attachTopLevel(id, tl)
		}
		return id
	default:
		panic("rlt.Module with neither Global nor Ordinary set")
	}
}

func (b *lowering) attachTopLevel(module AnyID, tl *rlt.TopLevel) {
	child := b.lowerTopLevel(tl)
	_ = Attach(b.arena, module, child, TagTopLevel)
}

func (b *lowering) lowerTopLevel(tl *rlt.TopLevel) AnyID {
	switch {
	case tl.Enum != nil:
		return b.lowerEnum(tl.Enum)
	case tl.Struct != nil:
		return b.lowerStruct(tl.Struct)
	case tl.Function != nil:
		return b.lowerFunction(tl.Function)
	default:
		panic("rlt.TopLevel with no variant set")
	}
}

func (b *lowering) lowerEnum(e *rlt.EnumDecl) AnyID {
	variants := make([]string, len(e.Variants))
	copy(variants, e.Variants)
	return b.insert(KindEnumDecl, &EnumDecl{Name: e.Name, Variants: variants}, e)
}

func (b *lowering) lowerStruct(s *rlt.StructDecl) AnyID {
	id := b.insert(KindStructDecl, &StructDecl{Name: s.Name}, s)
	for _, p := range s.Params {
		param := b.lowerParameter(p)
		_ = Attach(b.arena, id, param, TagParam)
	}
	return id
}

func (b *lowering) lowerParameter(p *rlt.Parameter) AnyID {
	id := b.insert(KindParameter, &Parameter{Name: p.Name}, p)
	if p.Type != nil {
		ty := b.lowerTypeNode(p.Type)
		_ = Attach(b.arena, id, ty, TagParamType)
	}
	return id
}

func (b *lowering) lowerFunction(f *rlt.BodiedFunction) AnyID {
	id := b.insert(KindBodiedFunction, &BodiedFunction{Name: f.Name}, f)
	for _, p := range f.Params {
		param := b.lowerParameter(p)
		_ = Attach(b.arena, id, param, TagParam)
	}
	if f.ReturnType != nil {
		ty := b.lowerTypeNode(f.ReturnType)
		_ = Attach(b.arena, id, ty, TagReturnType)
	}
	body := b.lowerExpression(f.Body)
	_ = Attach(b.arena, id, body, TagBody)
	return id
}

// lowerTypeNode collapses a union with no alternatives down to its single
// atom — `A` and `A | (nothing)` are the same type, so only a real union
// (len(Union) > 0) gets a UnionType wrapper node.
func (b *lowering) lowerTypeNode(t *rlt.TypeNode) AnyID {
	first := b.lowerTypeAtom(t.First)
	if len(t.Union) == 0 {
		return first
	}
	id := b.insert(KindUnionType, &UnionType{}, t)
	_ = Attach(b.arena, id, first, TagUnionAlternative)
	for _, alt := range t.Union {
		altID := b.lowerTypeAtom(alt)
		_ = Attach(b.arena, id, altID, TagUnionAlternative)
	}
	return id
}

func (b *lowering) lowerTypeAtom(a *rlt.TypeAtom) AnyID {
	switch {
	case a.Tuple != nil:
		return b.lowerTupleType(a.Tuple)
	case a.Reference != nil:
		return b.insert(KindTypeReference, &TypeReference{Name: a.Reference.Name}, a.Reference)
	default:
		panic("rlt.TypeAtom with no variant set")
	}
}

// lowerTupleType collapses a single-element tuple type to its element — a
// parenthesized type `(T)` is a grouping, not a 1-tuple, the same rule
// lowerTerm applies to parenthesized expressions.
func (b *lowering) lowerTupleType(t *rlt.TupleType) AnyID {
	if len(t.Elements) == 1 {
		return b.lowerTypeNode(t.Elements[0])
	}
	id := b.insert(KindTupleType, &TupleType{}, t)
	for _, el := range t.Elements {
		elID := b.lowerTypeNode(el)
		_ = Attach(b.arena, id, elID, TagTupleElement)
	}
	return id
}

func (b *lowering) lowerExpression(e *rlt.Expression) AnyID {
	switch {
	case e.If != nil:
		return b.lowerIf(e.If)
	case e.Let != nil:
		return b.lowerLet(e.Let)
	case e.Op != nil:
		return b.lowerOperation(e.Op)
	default:
		panic("rlt.Expression with no variant set")
	}
}

func (b *lowering) lowerIf(i *rlt.IfExpr) AnyID {
	id := b.insert(KindIfExpr, &IfExpr{}, i)
	cond := b.lowerExpression(i.Condition)
	_ = Attach(b.arena, id, cond, TagCondition)
	body := b.lowerExpression(i.Body)
	_ = Attach(b.arena, id, body, TagBody)
	for _, elif := range i.Elifs {
		branch := b.lowerElif(elif)
		_ = Attach(b.arena, id, branch, TagElifBranch)
	}
	if i.Else != nil {
		elseBody := b.lowerExpression(i.Else.Body)
		_ = Attach(b.arena, id, elseBody, TagElseBranch)
	}
	return id
}

func (b *lowering) lowerElif(e *rlt.ElifExpr) AnyID {
	id := b.insert(KindElifBranch, &ElifBranch{}, e)
	cond := b.lowerExpression(e.Condition)
	_ = Attach(b.arena, id, cond, TagCondition)
	body := b.lowerExpression(e.Body)
	_ = Attach(b.arena, id, body, TagBody)
	return id
}

func (b *lowering) lowerLet(l *rlt.LetExpr) AnyID {
	id := b.insert(KindLetExpr, &LetExpr{Name: l.Name}, l)
	value := b.lowerExpression(l.Value)
	_ = Attach(b.arena, id, value, TagBinding)
	body := b.lowerExpression(l.Body)
	_ = Attach(b.arena, id, body, TagBody)
	return id
}

// lowerOperation desugars a left-associative chain `a op1 b op2 c ...` into
// nested binary Operation nodes: (a op1 b) op2 c. A chain with no operators
// at all lowers straight through to its single Application with no
// Operation node wrapping it (spec §4.6 treats binary ops as desugared
// applications of a two-argument operator, so the AST never carries an
// n-ary Operation).
func (b *lowering) lowerOperation(o *rlt.Operation) AnyID {
	left := b.lowerApplication(o.First)
	for _, rhs := range o.Rest {
		right := b.lowerApplication(rhs.Operand)
		id := b.insert(KindOperation, &Operation{Operator: rhs.Operator}, rhs)
		_ = Attach(b.arena, id, left, TagOperand)
		_ = Attach(b.arena, id, right, TagOperand)
		left = id
	}
	return left
}

// lowerApplication desugars `f(x)(y)` into nested Application nodes:
// Application(Application(f, x), y). A term with no call suffixes lowers
// straight through with no Application wrapper.
func (b *lowering) lowerApplication(a *rlt.Application) AnyID {
	target := b.lowerTerm(a.Target)
	for _, call := range a.Calls {
		id := b.insert(KindApplication, &Application{}, call)
		_ = Attach(b.arena, id, target, TagCallTarget)
		for _, arg := range call.Args {
			argID := b.lowerExpression(arg)
			_ = Attach(b.arena, id, argID, TagCallArg)
		}
		target = id
	}
	return target
}

func (b *lowering) lowerTerm(t *rlt.Term) AnyID {
	switch {
	case t.Literal != nil:
		return b.lowerLiteral(t.Literal)
	case t.Tuple != nil:
		return b.lowerTupleExpr(t.Tuple)
	case t.Ref != nil:
		return b.lowerTermReference(t.Ref)
	default:
		panic("rlt.Term with no variant set")
	}
}

// lowerTupleExpr collapses a single-element tuple to its inner expression —
// `(e)` is a parenthesized grouping, not a 1-tuple (spec §3 note carried
// into rlt.TupleExpr's doc comment).
func (b *lowering) lowerTupleExpr(t *rlt.TupleExpr) AnyID {
	if len(t.Elements) == 1 {
		return b.lowerExpression(t.Elements[0])
	}
	id := b.insert(KindTupleExpr, &TupleExpr{}, t)
	for _, el := range t.Elements {
		elID := b.lowerExpression(el)
		_ = Attach(b.arena, id, elID, TagTupleElement)
	}
	return id
}

func (b *lowering) lowerTermReference(r *rlt.TermReference) AnyID {
	switch {
	case r.Identifier != nil:
		return b.insert(KindTermReference, &TermReference{Name: *r.Identifier}, r)
	case r.TypeRef != nil:
		return b.insert(KindTermReference, &TermReference{Name: *r.TypeRef, IsTypeName: true}, r)
	default:
		panic("rlt.TermReference with no variant set")
	}
}

func (b *lowering) lowerLiteral(l *rlt.Literal) AnyID {
	kind, raw := classifyLiteral(l)
	return b.insert(KindLiteral, &Literal{Kind: kind, Raw: raw}, l)
}

func classifyLiteral(l *rlt.Literal) (LiteralKind, string) {
	switch {
	case l.Binary != nil:
		return LiteralInt, *l.Binary
	case l.Octal != nil:
		return LiteralInt, *l.Octal
	case l.Hex != nil:
		return LiteralInt, *l.Hex
	case l.Int != nil:
		return LiteralInt, *l.Int
	case l.Float != nil:
		return LiteralFloat, *l.Float
	case l.Char != nil:
		return LiteralChar, *l.Char
	case l.String != nil:
		return LiteralString, *l.String
	default:
		panic(fmt.Sprintf("rlt.Literal with no variant set: %+v", l))
	}
}
