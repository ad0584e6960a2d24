// Package driver ties file discovery, tokenization, parsing, lowering,
// macro passes and scope resolution into one per-invocation pipeline (spec
// §4.8). Reading and tokenizing every discovered file runs in parallel,
// bounded by the configured parallelism cap; everything past tokenization
// (parse -> lower -> macros -> scope) runs strictly sequentially per file,
// matching spec §5's "parsing, lowering, traversal and inference are never
// parallelized across or within a single file".
package driver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/config"
	"github.com/ITesserakt/kodept/internal/diag"
	"github.com/ITesserakt/kodept/internal/macro"
	"github.com/ITesserakt/kodept/internal/position"
	"github.com/ITesserakt/kodept/internal/rlt"
	"github.com/ITesserakt/kodept/internal/scope"
	"github.com/ITesserakt/kodept/internal/token"
)

// FileResult is one compilation unit's outcome: its path, a stable id for
// cross-referencing diagnostics, and whatever the unit's Reporter
// accumulated.
type FileResult struct {
	Path    string
	UnitID  uuid.UUID
	Reports []diag.Report
}

// Driver runs the pipeline across a set of discovered files.
type Driver struct {
	cfg      config.Config
	pipeline *macro.Pipeline
}

// New builds a Driver. pipeline may be nil, in which case files are only
// tokenized, parsed, lowered and scope-resolved — no macro stage runs.
func New(cfg config.Config, pipeline *macro.Pipeline) *Driver {
	return &Driver{cfg: cfg, pipeline: pipeline}
}

// tokenized is the result of the parallel read+lex phase for one file.
type tokenized struct {
	path   string
	unitID uuid.UUID
	source position.CodeSource
	err    error
}

// Run discovers every file matched by patterns, tokenizes them in
// parallel, then runs the rest of the pipeline sequentially per file.
func (d *Driver) Run(ctx context.Context, patterns []string) ([]FileResult, error) {
	paths, err := Discover(patterns)
	if err != nil {
		return nil, fmt.Errorf("discovering sources: %w", err)
	}

	units := make([]tokenized, len(paths))
	limit := d.cfg.MaxParallelism
	if limit <= 0 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			source, err := position.FromFile(path)
			if err != nil {
				units[i] = tokenized{path: path, err: err}
				return nil
			}
			if _, err := token.Tokenize(string(source.Bytes())); err != nil {
				units[i] = tokenized{path: path, unitID: uuid.New(), source: source, err: err}
				return nil
			}
			units[i] = tokenized{path: path, unitID: uuid.New(), source: source}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]FileResult, len(units))
	for i, u := range units {
		results[i] = d.runFile(u)
	}
	return results, nil
}

// runFile drives parse -> lower -> macros -> scope for one already-read,
// already-tokenized file. A panic anywhere in this sequence is caught here
// and converted to a Bug-severity KC666 report: panics must never escape
// the driver (spec §7).
func (d *Driver) runFile(u tokenized) (result FileResult) {
	result = FileResult{Path: u.path, UnitID: u.unitID}
	reporter := diag.NewReporter()

	defer func() {
		if r := recover(); r != nil {
			reporter.Report(diag.SeverityBug, "KC666", fmt.Sprintf("compiler crash: %v", r), nil, position.CodePath{Name: u.path})
		}
		result.Reports = reporter.All()
	}()

	if u.err != nil {
		reporter.Report(diag.SeverityError, "KC001", u.err.Error(), nil, position.CodePath{Name: u.path})
		return result
	}

	path := u.source.Path()

	file, err := rlt.Parse(string(u.source.Bytes()))
	if err != nil {
		reporter.Report(diag.SeverityError, "KC100", err.Error(), nil, path)
		return result
	}

	arena, root, rltAccessor := ast.Lower(file)
	rootID := ast.Cast[ast.GenericASTNode](root)

	if d.pipeline != nil {
		mctx := &macro.Context{Arena: arena, RLT: rltAccessor, Reporter: reporter, Path: path}
		if err := d.pipeline.Run(context.Background(), mctx, rootID); err != nil {
			reporter.Report(diag.SeverityError, "KC300", err.Error(), nil, path)
			return result
		}
		if reporter.HasErrors() {
			return result
		}
	}

	scope.Build(arena, rootID, reporter, path)

	return result
}

// ExitCode is non-zero iff any file produced an error-or-worse report
// (spec §4.8 "overall process exit code non-zero iff any file produced an
// error-severity report").
func ExitCode(results []FileResult) int {
	for _, r := range results {
		for _, rep := range r.Reports {
			if rep.Severity >= diag.SeverityError {
				return 1
			}
		}
	}
	return 0
}
