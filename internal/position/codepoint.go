// Package position describes byte offsets into source text: CodePoint, the
// CodeSource a CodePoint is relative to, and the CodeHolder contract that
// turns one into a text slice.
package position

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// CodePoint is a byte offset/length pair into some source.
type CodePoint struct {
	Offset int
	Length int
}

// SinglePoint builds a zero-width-ish CodePoint of length 1 at offset.
func SinglePoint(offset int) CodePoint {
	return CodePoint{Offset: offset, Length: 1}
}

// End returns the exclusive end offset of the range.
func (p CodePoint) End() int {
	return p.Offset + p.Length
}

func (p CodePoint) String() string {
	return fmt.Sprintf("%d:%d", p.Offset, p.Length)
}

// Span wraps a CodePoint; RLT nodes embed a Span rather than a bare
// CodePoint so that positional helpers (Located) have a stable method set.
type Span struct {
	Point CodePoint
}

func NewSpan(point CodePoint) Span {
	return Span{Point: point}
}

// Located is implemented by every RLT node: it can always answer where in
// the source it came from.
type Located interface {
	Location() CodePoint
}

func (s Span) Location() CodePoint {
	return s.Point
}

// NodeSpan is embedded (anonymously) by every RLT node. participle
// recognizes fields literally named Pos/EndPos and populates them with the
// token range the struct consumed, including through an embedded field —
// so every RLT node gets a working Location() by embedding this once
// instead of redeclaring Pos/EndPos/Location on each node type.
type NodeSpan struct {
	Pos    lexer.Position
	EndPos lexer.Position
}

func (s NodeSpan) Location() CodePoint {
	return CodePoint{Offset: s.Pos.Offset, Length: s.EndPos.Offset - s.Pos.Offset}
}

// Merge returns the smallest CodePoint covering both a and b.
func Merge(a, b CodePoint) CodePoint {
	start := a.Offset
	if b.Offset < start {
		start = b.Offset
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return CodePoint{Offset: start, Length: end - start}
}
