// Package hminfer implements the Hindley-Milner core: a small lambda
// calculus ("Language"), its monomorphic/polymorphic type representation,
// substitutions, Robinson unification (Algorithm U) and Algorithm W
// (spec §4.6).
package hminfer

import (
	"fmt"
	"strings"
)

// VarID names a type variable. The spec's Environment hands these out
// from a monotonic counter rather than letting callers pick them, the
// same role ast.NodeId's arena-assigned index plays for AST identity.
type VarID int

func (v VarID) String() string {
	return fmt.Sprintf("t%d", int(v))
}

// MonoKind discriminates Monomorphic the way ast.Kind discriminates
// GenericASTNode.
type MonoKind int

const (
	MonoVar MonoKind = iota
	MonoConstant
	MonoArrow
	MonoTuple
	MonoUnion
)

// Monomorphic is `MonomorphicType = Var(id) | Constant(name) |
// Arrow(from, to) | Tuple([T]) | Union([T])` (spec §4.6). From/To are
// pointers so Arrow can reference Monomorphic by value elsewhere without
// infinite recursion in the struct layout; Elements backs both Tuple and
// Union.
type Monomorphic struct {
	Kind     MonoKind
	Var      VarID
	Name     string
	From, To *Monomorphic
	Elements []Monomorphic
}

// Var constructs a type variable.
func Var(v VarID) Monomorphic {
	return Monomorphic{Kind: MonoVar, Var: v}
}

// Constant constructs a nullary named type such as "Integer".
func Constant(name string) Monomorphic {
	return Monomorphic{Kind: MonoConstant, Name: name}
}

// Arrow constructs a function type from -> to.
func Arrow(from, to Monomorphic) Monomorphic {
	return Monomorphic{Kind: MonoArrow, From: &from, To: &to}
}

// TupleOf constructs a tuple type.
func TupleOf(elems ...Monomorphic) Monomorphic {
	return Monomorphic{Kind: MonoTuple, Elements: elems}
}

// UnionOf constructs a union type.
func UnionOf(elems ...Monomorphic) Monomorphic {
	return Monomorphic{Kind: MonoUnion, Elements: elems}
}

func (t Monomorphic) String() string {
	switch t.Kind {
	case MonoVar:
		return t.Var.String()
	case MonoConstant:
		return t.Name
	case MonoArrow:
		return fmt.Sprintf("(%s -> %s)", t.From.String(), t.To.String())
	case MonoTuple:
		return tupleString(t.Elements, "(", ")")
	case MonoUnion:
		return tupleString(t.Elements, "", "")
	default:
		return "?"
	}
}

func tupleString(elems []Monomorphic, open, close string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	sep := ", "
	if open == "" {
		sep = " | "
	}
	return open + strings.Join(parts, sep) + close
}

// FreeVars collects the free type variables in t.
func FreeVars(t Monomorphic) map[VarID]struct{} {
	out := make(map[VarID]struct{})
	collectFreeVars(t, out)
	return out
}

func collectFreeVars(t Monomorphic, out map[VarID]struct{}) {
	switch t.Kind {
	case MonoVar:
		out[t.Var] = struct{}{}
	case MonoArrow:
		collectFreeVars(*t.From, out)
		collectFreeVars(*t.To, out)
	case MonoTuple, MonoUnion:
		for _, e := range t.Elements {
			collectFreeVars(e, out)
		}
	}
}

// PolyKind discriminates Polymorphic.
type PolyKind int

const (
	PolyMonomorphic PolyKind = iota
	PolyBinding
)

// Polymorphic is `PolymorphicType = Monomorphic(T) | Binding{bind: Var,
// inner: PolymorphicType}` (spec §4.6) — universal quantification over
// zero or more type variables.
type Polymorphic struct {
	Kind  PolyKind
	Mono  Monomorphic
	Bind  VarID
	Inner *Polymorphic
}

// FromMono wraps a monomorphic type with no quantifiers.
func FromMono(t Monomorphic) Polymorphic {
	return Polymorphic{Kind: PolyMonomorphic, Mono: t}
}

// Bind quantifies over bind, wrapping inner.
func Bind(bind VarID, inner Polymorphic) Polymorphic {
	return Polymorphic{Kind: PolyBinding, Bind: bind, Inner: &inner}
}

// FreeVarsPoly collects the free type variables in p — everything
// FreeVars(p.Mono) would find, minus the chain of bound variables.
func FreeVarsPoly(p Polymorphic) map[VarID]struct{} {
	switch p.Kind {
	case PolyBinding:
		inner := FreeVarsPoly(*p.Inner)
		delete(inner, p.Bind)
		return inner
	default:
		return FreeVars(p.Mono)
	}
}

func (p Polymorphic) String() string {
	switch p.Kind {
	case PolyBinding:
		return fmt.Sprintf("forall %s. %s", p.Bind, p.Inner.String())
	default:
		return p.Mono.String()
	}
}
