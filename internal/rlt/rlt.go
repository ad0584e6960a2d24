// Package rlt defines the Raw Lexical Tree: the positional concrete syntax
// tree the parser produces. Every node embeds position.NodeSpan so it
// implements position.Located, and its span covers the source text it was
// parsed from (spec §3). Nodes keep some of their keyword and bracket tokens
// as string fields (e.g. `fun`, `(`, `)`); separators such as `,`, `:`,
// `|` and `->`, and the `global module` header keywords, are matched but
// not stored.
//
// The grammar itself is built the teacher's way: participle struct tags
// over a lexer.Definition, mirroring internal/dsl/grammar.go's
// Grammar/StatementAST/QueryAST dispatch-by-pointer-field idiom.
package rlt

import "github.com/ITesserakt/kodept/internal/position"

// File is the RLT root: a sequence of modules.
type File struct {
	position.NodeSpan
	Modules []*Module `parser:"@@*"`
}

// Module dispatches on the Global/Ordinary keyword form (spec §3).
type Module struct {
	position.NodeSpan
	Global   *GlobalModule   `parser:"  @@"`
	Ordinary *OrdinaryModule `parser:"| @@"`
}

// GlobalHeader is the optional `global module <id>` prefix of a
// GlobalModule. It is its own struct (rather than split across two fields
// of GlobalModule) so the whole header can be made optional as one unit —
// a bare top-level declaration list with no header at all is also a valid
// GlobalModule, which is how scenario 1's `fun id(x) => x` (no module
// wrapper at all) lowers to ModDecl(Global) per spec §8.
type GlobalHeader struct {
	position.NodeSpan
	Id string `parser:"\"global\" \"module\" @TypeIdent"`
}

// GlobalModule is an optional `global module <id>` header followed by one
// or more top-level declarations claiming the rest of the file (or up to
// the next explicit `module { ... }` block). Rest requires at least one
// declaration so an empty match can never succeed here and get swallowed
// before the Ordinary alternative is tried.
type GlobalModule struct {
	position.NodeSpan
	Header *GlobalHeader `parser:"@@?"`
	Rest   []*TopLevel   `parser:"@@+"`
}

// OrdinaryModule is `module <id> { <rest...> }`.
type OrdinaryModule struct {
	position.NodeSpan
	Keyword string      `parser:"@\"module\""`
	Id      string      `parser:"@TypeIdent"`
	LBrace  string      `parser:"@\"{\""`
	Rest    []*TopLevel `parser:"@@*"`
	RBrace  string      `parser:"@\"}\""`
}

// TopLevel dispatches on enum / struct / bodied-function declarations.
type TopLevel struct {
	position.NodeSpan
	Enum     *EnumDecl       `parser:"  @@"`
	Struct   *StructDecl     `parser:"| @@"`
	Function *BodiedFunction `parser:"| @@"`
}

// EnumDecl: `enum Name { Variant, Variant, ... }`. The source's Stack/Heap
// enum distinction (spec §9 open question) is collapsed: both read as the
// same EnumDecl shape, per the spec's suggestion to resolve the ambiguity
// rather than carry it forward unexamined.
type EnumDecl struct {
	position.NodeSpan
	Keyword  string   `parser:"@\"enum\""`
	Name     string   `parser:"@TypeIdent"`
	LBrace   string   `parser:"@\"{\""`
	Variants []string `parser:"@TypeIdent (\",\" @TypeIdent)*"`
	RBrace   string   `parser:"@\"}\""`
}

// StructDecl: `struct Name(param, param: Type, ...)`.
type StructDecl struct {
	position.NodeSpan
	Keyword string       `parser:"@\"struct\""`
	Name    string       `parser:"@TypeIdent"`
	LParen  string       `parser:"@\"(\""`
	Params  []*Parameter `parser:"( @@ (\",\" @@)* )?"`
	RParen  string       `parser:"@\")\""`
}

// BodiedFunction: `fun name(params) (-> ReturnType)? => body`.
type BodiedFunction struct {
	position.NodeSpan
	Keyword    string       `parser:"@\"fun\""`
	Name       string       `parser:"@Ident"`
	LParen     string       `parser:"@\"(\""`
	Params     []*Parameter `parser:"( @@ (\",\" @@)* )?"`
	RParen     string       `parser:"@\")\""`
	ReturnType *TypeNode    `parser:"( \"->\" @@ )?"`
	Arrow      string       `parser:"@\"=>\""`
	Body       *Expression  `parser:"@@"`
}

// Parameter: typed (`name: Type`) or untyped (`name`) — both shapes live in
// one struct with an optional Type, per spec §3 "parameters
// (typed/untyped)".
type Parameter struct {
	position.NodeSpan
	Name string    `parser:"@Ident"`
	Type *TypeNode `parser:"( \":\" @@ )?"`
}

// TypeNode is a type with optional union alternatives: `A`, `(A, B)`,
// `A | B`.
type TypeNode struct {
	position.NodeSpan
	First *TypeAtom   `parser:"@@"`
	Union []*TypeAtom `parser:"( \"|\" @@ )*"`
}

// TypeAtom dispatches on tuple vs. plain reference.
type TypeAtom struct {
	position.NodeSpan
	Tuple     *TupleType     `parser:"  @@"`
	Reference *TypeReference `parser:"| @@"`
}

// TupleType: `(T1, T2, ...)`.
type TupleType struct {
	position.NodeSpan
	LParen   string      `parser:"@\"(\""`
	Elements []*TypeNode `parser:"( @@ (\",\" @@)* )?"`
	RParen   string      `parser:"@\")\""`
}

// TypeReference is a bare named type, e.g. `Int`.
type TypeReference struct {
	position.NodeSpan
	Name string `parser:"@TypeIdent"`
}

// TermReference is a reference to a lower-case identifier or a type name
// used as a term (spec §3 "term references (identifier/type)").
type TermReference struct {
	position.NodeSpan
	Identifier *string `parser:"  @Ident"`
	TypeRef    *string `parser:"| @TypeIdent"`
}

// Literal covers every literal token kind the tokenizer classifies.
type Literal struct {
	position.NodeSpan
	Binary *string `parser:"  @Binary"`
	Octal  *string `parser:"| @Octal"`
	Hex    *string `parser:"| @Hex"`
	Float  *string `parser:"| @Float"`
	Int    *string `parser:"| @Int"`
	Char   *string `parser:"| @Char"`
	String *string `parser:"| @String"`
}

// Expression dispatches on code-flow, let-binding or a plain operation
// chain.
type Expression struct {
	position.NodeSpan
	If  *IfExpr    `parser:"  @@"`
	Let *LetExpr   `parser:"| @@"`
	Op  *Operation `parser:"| @@"`
}

// IfExpr: `if (cond) body elif (cond) body* (else body)?`.
type IfExpr struct {
	position.NodeSpan
	Keyword   string      `parser:"@\"if\""`
	LParen    string      `parser:"@\"(\""`
	Condition *Expression `parser:"@@"`
	RParen    string      `parser:"@\")\""`
	Body      *Expression `parser:"@@"`
	Elifs     []*ElifExpr `parser:"@@*"`
	Else      *ElseExpr   `parser:"@@?"`
}

// ElifExpr: `elif (cond) body`.
type ElifExpr struct {
	position.NodeSpan
	Keyword   string      `parser:"@\"elif\""`
	LParen    string      `parser:"@\"(\""`
	Condition *Expression `parser:"@@"`
	RParen    string      `parser:"@\")\""`
	Body      *Expression `parser:"@@"`
}

// ElseExpr: `else body`.
type ElseExpr struct {
	position.NodeSpan
	Keyword string      `parser:"@\"else\""`
	Body    *Expression `parser:"@@"`
}

// LetExpr: `let name = value in body`.
type LetExpr struct {
	position.NodeSpan
	Keyword string      `parser:"@\"let\""`
	Name    string      `parser:"@Ident"`
	Eq      string      `parser:"@\"=\""`
	Value   *Expression `parser:"@@"`
	In      string      `parser:"@\"in\""`
	Body    *Expression `parser:"@@"`
}

// Operation is a left-to-right chain of binary operators over applications:
// `a + b - c`.
type Operation struct {
	position.NodeSpan
	First *Application `parser:"@@"`
	Rest  []*OpRhs      `parser:"@@*"`
}

// OpRhs is one `<operator> <operand>` link in an Operation chain.
type OpRhs struct {
	position.NodeSpan
	Operator string       `parser:"@Operator"`
	Operand  *Application `parser:"@@"`
}

// Application is a term optionally followed by one or more call argument
// lists: `f(x)(y)`.
type Application struct {
	position.NodeSpan
	Target *Term       `parser:"@@"`
	Calls  []*CallArgs `parser:"@@*"`
}

// CallArgs: `(arg, arg, ...)`.
type CallArgs struct {
	position.NodeSpan
	LParen string        `parser:"@\"(\""`
	Args   []*Expression `parser:"( @@ (\",\" @@)* )?"`
	RParen string        `parser:"@\")\""`
}

// Term dispatches on literal, parenthesized tuple/grouping, or a bare
// identifier/type reference.
type Term struct {
	position.NodeSpan
	Literal *Literal   `parser:"  @@"`
	Tuple   *TupleExpr `parser:"| @@"`
	Ref     *TermReference `parser:"| @@"`
}

// TupleExpr: `(e1, e2, ...)`. A single-element form is a parenthesized
// grouping, not a 1-tuple; lowering tells the two apart by element count.
type TupleExpr struct {
	position.NodeSpan
	LParen   string        `parser:"@\"(\""`
	Elements []*Expression `parser:"( @@ (\",\" @@)* )?"`
	RParen   string        `parser:"@\")\""`
}
