package rlt

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/token"
)

// ErrorLocation pinpoints a parse error in the source.
type ErrorLocation struct {
	AbsoluteOffset int
	Span           position.CodePoint
}

// ParseError is one expected/actual mismatch the parser reported.
type ParseError struct {
	Expected []string
	Actual   string
	Location ErrorLocation
}

func (e ParseError) Error() string {
	return fmt.Sprintf("expected %v, got %q at %s", e.Expected, e.Actual, e.Location.Span)
}

// ParseErrors is the parser's failure value: one or more ParseError. It
// satisfies error so callers that don't care about structure can still
// treat it as one.
type ParseErrors []ParseError

func (es ParseErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	return fmt.Sprintf("%d parse errors, first: %s", len(es), es[0].Error())
}

// kodeptParser reuses token.Lexer verbatim so the grammar and the
// standalone tokenizer (C3) are built from the one set of lexing rules and
// can never classify the same source differently.
var kodeptParser = participle.MustBuild[File](
	participle.Lexer(token.Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse runs the Kodept grammar over source and returns the RLT, or a
// ParseErrors describing what went wrong.
func Parse(source string) (*File, error) {
	file, err := kodeptParser.ParseString("", source)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return file, nil
}

func wrapParseError(err error) ParseErrors {
	if perr, ok := err.(participle.Error); ok {
		pos := perr.Position()
		return ParseErrors{{
			Expected: nil,
			Actual:   perr.Message(),
			Location: ErrorLocation{
				AbsoluteOffset: pos.Offset,
				Span:           position.CodePoint{Offset: pos.Offset, Length: 1},
			},
		}}
	}
	return ParseErrors{{Actual: err.Error()}}
}
