package hminfer

// ExprKind discriminates Expr: the five forms the spec's `Language`
// names, `Var(name)`, `App(f, x)`, `Lambda(param, body)`, `Let(name,
// value, body)`, `Literal(L)` (spec §4.6), plus ExprTuple below. Six
// variants is small enough to carry as one field per variant, the same
// choice internal/graph/value.go makes for its own four-variant Value,
// rather than the any-payload shape internal/ast uses for its seventeen
// node kinds.
type ExprKind int

const (
	ExprVar ExprKind = iota
	ExprApp
	ExprLambda
	ExprLet
	ExprLiteral
	// ExprTuple is an addition beyond the spec's five named forms: a
	// tuple *expression* whose elements may be arbitrary terms (not just
	// literals, which Literal(Tuple[]) already covers) has no home in
	// the formal grammar, but scenario 3's `(id(1), id("s"))` needs one
	// to type as a Tuple rather than go through a synthetic constructor
	// function. See DESIGN.md.
	ExprTuple
)

// Expr is one Language term.
type Expr struct {
	Kind     ExprKind
	Name     string // Var's name; Lambda's param; Let's bound name
	Func     *Expr  // App
	Arg      *Expr  // App
	Body     *Expr  // Lambda body; Let body
	Value    *Expr  // Let's bound value
	Lit      Literal
	Elements []Expr // Tuple
}

// MakeVar builds a Var(name) term.
func MakeVar(name string) Expr {
	return Expr{Kind: ExprVar, Name: name}
}

// MakeApp builds an App(f, x) term.
func MakeApp(f, x Expr) Expr {
	return Expr{Kind: ExprApp, Func: &f, Arg: &x}
}

// MakeLambda builds a Lambda(param, body) term.
func MakeLambda(param string, body Expr) Expr {
	return Expr{Kind: ExprLambda, Name: param, Body: &body}
}

// MakeLet builds a Let(name, value, body) term.
func MakeLet(name string, value, body Expr) Expr {
	return Expr{Kind: ExprLet, Name: name, Value: &value, Body: &body}
}

// MakeLiteral builds a Literal(l) term.
func MakeLiteral(l Literal) Expr {
	return Expr{Kind: ExprLiteral, Lit: l}
}

// MakeTuple builds a Tuple(elements) term.
func MakeTuple(elements ...Expr) Expr {
	return Expr{Kind: ExprTuple, Elements: elements}
}

// LiteralKind classifies a Literal the way ast.LiteralKind classifies an
// AST leaf (spec §4.6 "L ∈ {Integer, Float, String, Char, Tuple[]}").
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitString
	LitChar
	LitTuple
)

// Literal is a Language literal value. Raw holds the literal's own text
// for scalar kinds; Elements holds the nested literals of a Tuple[]
// literal (an immediate tuple of other literals, as distinct from a
// tuple *expression* built from arbitrary sub-terms, which translates to
// an ExprTuple instead, never to Literal).
type Literal struct {
	Kind     LiteralKind
	Raw      string
	Elements []Literal
}

// TypeOf is Algorithm W's `typeof(l)` (spec §4.6 "Literal(l): return (∅,
// typeof(l))") — purely syntax-directed, no substitution or environment
// involved.
func TypeOf(l Literal) Monomorphic {
	switch l.Kind {
	case LitInteger:
		return Constant("Integer")
	case LitFloat:
		return Constant("Float")
	case LitString:
		return Constant("String")
	case LitChar:
		return Constant("Char")
	case LitTuple:
		elems := make([]Monomorphic, len(l.Elements))
		for i, e := range l.Elements {
			elems[i] = TypeOf(e)
		}
		return TupleOf(elems...)
	default:
		return Constant("Unknown")
	}
}
