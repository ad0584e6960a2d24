package token

import "github.com/alecthomas/participle/v2/lexer"

// Lexer is the Kodept source lexer: a participle simple lexer, built the
// same way the teacher's internal/dsl/grammar.go builds dslLexer. Rule
// order matters — Keyword must precede the identifier rules so reserved
// words aren't swallowed as plain identifiers. The rlt package reuses this
// exact Definition to build its grammar, so tokenization and parsing never
// drift out of sync with each other.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "Binary", Pattern: `0[bB][01]+`},
	{Name: "Octal", Pattern: `0[oO][0-7]+`},
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Char", Pattern: `'([^'\\]|\\.)'`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Keyword", Pattern: `\b(module|global|fun|let|in|if|elif|else|enum|struct|return|true|false|extends)\b`},
	{Name: "TypeIdent", Pattern: `[A-Z][a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `=>|->|==|!=|<=|>=|&&|\|\||[+\-*/%<>=!&|^~]`},
	{Name: "Symbol", Pattern: `[(){}\[\],:;.]`},
})
