// Package kodept is the compiler's embeddable facade: Compile (or
// CompileFile) takes source text through parse -> lower -> scope
// resolution and hands back a Unit exposing its diagnostics and AST dump,
// the same single-entry-point shape pgraph.go offered over its graph
// engine (New/Load/LoadFile/Query), now fronting a compiler pipeline
// instead of a query engine.
package kodept

import (
	"encoding/json"
	"os"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/rlt"
	"github.com/ITesserakt/kodept/internal/scope"
)

// Unit is one compiled file: its arena, its scope tree, and whatever
// diagnostics accumulated along the way.
type Unit struct {
	arena    *ast.Arena
	root     ast.AnyID
	reporter *diag.Reporter
	scopes   *scope.ScopeTree
	path     position.CodePath
}

// Compile parses, lowers and scope-resolves source, which is reported
// under name for diagnostics even though it was never read from disk
// (used by the embeddable API and tests).
func Compile(name, source string) (*Unit, error) {
	path := position.CodePath{Kind: position.ToMemory, Name: name}

	file, err := rlt.Parse(source)
	if err != nil {
		return nil, err
	}

	arena, rootID, _ := ast.Lower(file)
	root := ast.Cast[ast.GenericASTNode](rootID)
	reporter := diag.NewReporter()
	scopes := scope.Build(arena, root, reporter, path)

	return &Unit{arena: arena, root: root, reporter: reporter, scopes: scopes, path: path}, nil
}

// CompileFile reads path off disk and compiles it.
func CompileFile(path string) (*Unit, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	u, err := Compile(path, string(contents))
	if err != nil {
		return nil, err
	}
	u.path = position.CodePath{Kind: position.ToFile, Name: path}
	return u, nil
}

// Diagnostics returns every Report accumulated while compiling this Unit.
func (u *Unit) Diagnostics() []diag.Report {
	return u.reporter.All()
}

// HasErrors reports whether any accumulated diagnostic is error-or-worse.
func (u *Unit) HasErrors() bool {
	return u.reporter.HasErrors()
}

// Dump returns a JSON-serializable snapshot of the lowered AST.
func (u *Unit) Dump() ast.DumpNode {
	return ast.Dump(u.arena, u.root)
}

// DumpJSON marshals Dump to indented JSON, the shape `kodept dump-ast` and
// kodeptd's /dump endpoint both return.
func (u *Unit) DumpJSON() ([]byte, error) {
	return json.MarshalIndent(u.Dump(), "", "  ")
}

// Scopes returns the ScopeTree built for this Unit.
func (u *Unit) Scopes() *scope.ScopeTree {
	return u.scopes
}
