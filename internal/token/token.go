// Package token classifies Kodept source text into a flat stream of
// lexemes. The rules are expressed as a participle simple-lexer, the same
// way the teacher's DSL lexer (internal/dsl/grammar.go) is built, because
// grammar/lexer construction is exactly the concern participle exists for.
package token

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ITesserakt/kodept/internal/position"
)

// Kind classifies a Token. The literal sub-kinds, identifier casing split
// and the Ignore kind mirror spec §3's Token taxonomy exactly.
type Kind int

const (
	KindLiteralBinary Kind = iota
	KindLiteralOctal
	KindLiteralHex
	KindLiteralFloat
	KindLiteralInt
	KindLiteralChar
	KindLiteralString
	KindIdentifierLower
	KindIdentifierType
	KindKeyword
	KindOperator
	KindSymbol
	KindIgnore
)

func (k Kind) String() string {
	switch k {
	case KindLiteralBinary:
		return "binary-literal"
	case KindLiteralOctal:
		return "octal-literal"
	case KindLiteralHex:
		return "hex-literal"
	case KindLiteralFloat:
		return "float-literal"
	case KindLiteralInt:
		return "int-literal"
	case KindLiteralChar:
		return "char-literal"
	case KindLiteralString:
		return "string-literal"
	case KindIdentifierLower:
		return "identifier"
	case KindIdentifierType:
		return "type-identifier"
	case KindKeyword:
		return "keyword"
	case KindOperator:
		return "operator"
	case KindSymbol:
		return "symbol"
	case KindIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// IsIgnore reports whether the token is whitespace or a comment — consumers
// filter these out implicitly (spec §3).
func (k Kind) IsIgnore() bool {
	return k == KindIgnore
}

// Token is one classified lexeme with its exact byte span.
type Token struct {
	Kind Kind
	Text string
	Span position.Span
}

func (t Token) Location() position.CodePoint {
	return t.Span.Location()
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Span.Point)
}

// Stream is an ordered token sequence with ignore-filtering helpers.
type Stream struct {
	tokens []Token
}

func NewStream(tokens []Token) Stream {
	return Stream{tokens: tokens}
}

// All returns every token, ignore tokens included.
func (s Stream) All() []Token {
	return s.tokens
}

// Significant returns tokens with ignore tokens filtered out.
func (s Stream) Significant() []Token {
	out := make([]Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if !t.Kind.IsIgnore() {
			out = append(out, t)
		}
	}
	return out
}

func (s Stream) Len() int {
	return len(s.tokens)
}

func (s Stream) At(i int) Token {
	return s.tokens[i]
}

var kindByLexerSymbol = map[string]Kind{
	"Binary":   KindLiteralBinary,
	"Octal":    KindLiteralOctal,
	"Hex":      KindLiteralHex,
	"Float":    KindLiteralFloat,
	"Int":      KindLiteralInt,
	"Char":     KindLiteralChar,
	"String":   KindLiteralString,
	"TypeIdent": KindIdentifierType,
	"Ident":    KindIdentifierLower,
	"Keyword":  KindKeyword,
	"Operator": KindOperator,
	"Symbol":   KindSymbol,
	"Comment":  KindIgnore,
	"Whitespace": KindIgnore,
}

// Tokenize runs the Kodept lexer over source and returns its full token
// stream (ignore tokens included; filter with Stream.Significant).
func Tokenize(source string) (Stream, error) {
	def := Lexer
	lex, err := def.LexString("", source)
	if err != nil {
		return Stream{}, fmt.Errorf("tokenizing: %w", err)
	}

	symbolsByRune := def.Symbols()
	namesByRune := make(map[lexer.TokenType]string, len(symbolsByRune))
	for name, r := range symbolsByRune {
		namesByRune[r] = name
	}

	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return Stream{}, fmt.Errorf("tokenizing: %w", err)
		}
		if tok.EOF() {
			break
		}

		name := namesByRune[tok.Type]
		kind, ok := kindByLexerSymbol[name]
		if !ok {
			kind = KindSymbol
		}

		tokens = append(tokens, Token{
			Kind: kind,
			Text: tok.Value,
			Span: position.NewSpan(position.CodePoint{
				Offset: tok.Pos.Offset,
				Length: len(tok.Value),
			}),
		})
	}

	return NewStream(tokens), nil
}
