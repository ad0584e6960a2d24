package ast

// Kind discriminates the node variants the AST knows about (spec §3 "Node
// kinds mirror RLT but with semantic simplification"). Every GenericASTNode
// carries one of these — it is the authoritative runtime type tag TryAs
// checks against.
type Kind int

const (
	KindFileDecl Kind = iota
	KindModDecl
	KindEnumDecl
	KindStructDecl
	KindParameter
	KindTypeReference
	KindTupleType
	KindUnionType
	KindBodiedFunction
	KindIfExpr
	KindElifBranch
	KindLetExpr
	KindOperation
	KindApplication
	KindTermReference
	KindLiteral
	KindTupleExpr
)

func (k Kind) String() string {
	switch k {
	case KindFileDecl:
		return "FileDecl"
	case KindModDecl:
		return "ModDecl"
	case KindEnumDecl:
		return "EnumDecl"
	case KindStructDecl:
		return "StructDecl"
	case KindParameter:
		return "Parameter"
	case KindTypeReference:
		return "TypeReference"
	case KindTupleType:
		return "TupleType"
	case KindUnionType:
		return "UnionType"
	case KindBodiedFunction:
		return "BodiedFunction"
	case KindIfExpr:
		return "IfExpr"
	case KindElifBranch:
		return "ElifBranch"
	case KindLetExpr:
		return "LetExpr"
	case KindOperation:
		return "Operation"
	case KindApplication:
		return "Application"
	case KindTermReference:
		return "TermReference"
	case KindLiteral:
		return "Literal"
	case KindTupleExpr:
		return "TupleExpr"
	default:
		return "UnknownKind"
	}
}

// GenericASTNode is the arena's stored value: a Kind tag plus the
// kind-specific payload, the same discriminated-struct idiom as
// graph.Value, except the payload is carried through Payload rather than
// one field per variant — seventeen node kinds make a Value-style field
// list unwieldy, and the kind-erased field is what lets TryAs be a single
// generic function instead of one hand-written accessor per kind.
type GenericASTNode struct {
	Kind    Kind
	Payload any
}

// FileDecl is the AST root: an ordered list of module children (spec §3
// "The root is a FileDecl").
type FileDecl struct{}

// ModDecl is a lexical module. IsGlobal distinguishes the RLT's
// Global/Ordinary split; Name is empty for a headerless global module.
type ModDecl struct {
	Name     string
	IsGlobal bool
}

// EnumDecl names an enum and its variants (variants are plain strings in
// Variants, not separate child nodes — an enum variant carries no further
// structure in this language).
type EnumDecl struct {
	Name     string
	Variants []string
}

// StructDecl names a struct; its parameters are TagParam children.
type StructDecl struct {
	Name string
}

// Parameter is a function or struct parameter; its type, when present, is
// the TagParamType child.
type Parameter struct {
	Name string
}

// TypeReference is a bare named type such as `Int`.
type TypeReference struct {
	Name string
}

// TupleType has its elements as TagTupleElement children.
type TupleType struct{}

// UnionType has its alternatives as TagUnionAlternative children.
type UnionType struct{}

// BodiedFunction is `fun name(params) (-> ReturnType)? => body`. Params are
// TagParam children, ReturnType (if present) is the TagReturnType child,
// Body is the TagBody child.
type BodiedFunction struct {
	Name string
}

// IfExpr has Condition/Body as TagCondition/TagBody children, zero or more
// TagElifBranch children, and at most one TagElseBranch child.
type IfExpr struct{}

// ElifBranch has Condition/Body as TagCondition/TagBody children.
type ElifBranch struct{}

// LetExpr binds Name to the TagBinding child's value within the TagBody
// child.
type LetExpr struct {
	Name string
}

// Operation is a desugared binary operator application: Operator names the
// source operator token, Left/Right are TagOperand children in that order.
// Desugaring a chain like `a + b - c` to nested Operation nodes happens
// during lowering (spec §4.2); the AST itself only ever sees two operands.
type Operation struct {
	Operator string
}

// Application is a call: Target is the TagCallTarget child, arguments are
// TagCallArg children in call order.
type Application struct{}

// TermReference is a reference to a lower-case identifier or a type name
// used as a term.
type TermReference struct {
	Name       string
	IsTypeName bool
}

// LiteralKind classifies a Literal's value the same way token.Kind
// classifies a literal token (spec §3 Token taxonomy), minus the
// lexical-only distinctions (binary/octal/hex all collapse to an integer
// value once lowered).
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralChar
	LiteralString
	LiteralBool
)

// Literal is a leaf: Raw holds the original token text, Kind says how to
// interpret it. Parsing Raw into a typed value is left to consumers (the HM
// translation, C10) rather than done here, so the AST stays a plain syntax
// tree.
type Literal struct {
	Kind LiteralKind
	Raw  string
}

// TupleExpr has its elements as TagTupleElement children. A single-element
// RLT tuple is lowered to a bare grouping (no TupleExpr), see lower.go.
type TupleExpr struct{}
