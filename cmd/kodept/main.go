// Command kodept is the compiler's command-line surface: `check` runs the
// full pipeline over a set of sources, `dump-ast`/`dump-rlt` print a
// self-describing JSON tree for one file, optionally diffed against
// another (spec §4.9, grounded on cmd/cli's command-dispatch style —
// rebuilt on cobra instead of a REPL loop since the CLI is now
// non-interactive and scriptable).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/ITesserakt/kodept/internal/ast"
	"github.com/ITesserakt/kodept/internal/config"
	"github.com/ITesserakt/kodept/internal/driver"
	"github.com/ITesserakt/kodept/internal/rlt"
)

func main() {
	exitCode := 0
	root := newRootCmd(&exitCode)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func newRootCmd(exitCode *int) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "kodept",
		Short: "kodept — a small functional language's compiler front end",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "kodept.yaml", "path to the pipeline configuration file")

	root.AddCommand(newCheckCmd(&configPath, exitCode))
	root.AddCommand(newDumpASTCmd())
	root.AddCommand(newDumpRLTCmd())

	return root
}

// newCheckCmd runs the full pipeline over every file matched by globs and
// prints accumulated diagnostics (spec §4.8's driver, spec §4.9 "kodept
// check <globs...>"). The process exit code is communicated back to main
// via exitCode rather than an in-command os.Exit, so the command stays
// testable.
func newCheckCmd(configPath *string, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "check <globs...>",
		Short: "Run the compiler pipeline and print diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			d := driver.New(cfg, nil)
			results, err := d.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			for _, r := range results {
				for _, rep := range r.Reports {
					fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s: %s\n", r.Path, rep.Code, rep.Severity, rep.Message)
				}
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no files matched")
			}

			*exitCode = driver.ExitCode(results)
			return nil
		},
	}
}

// newDumpASTCmd prints the lowered AST of one file as JSON, optionally as
// a unified diff against a second file's AST (spec §4.9 "kodept dump-ast
// <file> --diff <other-file>").
func newDumpASTCmd() *cobra.Command {
	var diffAgainst string

	cmd := &cobra.Command{
		Use:   "dump-ast <file>",
		Short: "Print the lowered AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dump, err := dumpASTFile(args[0])
			if err != nil {
				return err
			}
			if diffAgainst == "" {
				return printJSON(cmd, dump)
			}

			other, err := dumpASTFile(diffAgainst)
			if err != nil {
				return err
			}
			return printDiff(cmd, args[0], dump, diffAgainst, other)
		},
	}
	cmd.Flags().StringVar(&diffAgainst, "diff", "", "diff this file's AST dump against another file's")
	return cmd
}

// newDumpRLTCmd prints the raw lexical tree of one file as JSON, with the
// same --diff support as dump-ast.
func newDumpRLTCmd() *cobra.Command {
	var diffAgainst string

	cmd := &cobra.Command{
		Use:   "dump-rlt <file>",
		Short: "Print the parsed raw lexical tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dump, err := dumpRLTFile(args[0])
			if err != nil {
				return err
			}
			if diffAgainst == "" {
				return printJSON(cmd, dump)
			}

			other, err := dumpRLTFile(diffAgainst)
			if err != nil {
				return err
			}
			return printDiff(cmd, args[0], dump, diffAgainst, other)
		},
	}
	cmd.Flags().StringVar(&diffAgainst, "diff", "", "diff this file's RLT dump against another file's")
	return cmd
}

func dumpASTFile(path string) (ast.DumpNode, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return ast.DumpNode{}, err
	}
	file, err := rlt.Parse(string(source))
	if err != nil {
		return ast.DumpNode{}, err
	}
	arena, root, _ := ast.Lower(file)
	return ast.Dump(arena, ast.Cast[ast.GenericASTNode](root)), nil
}

func dumpRLTFile(path string) (*rlt.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return rlt.Parse(string(source))
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func printDiff(cmd *cobra.Command, aName string, a any, bName string, b any) error {
	aJSON, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	bJSON, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(aJSON)),
		B:        difflib.SplitLines(string(bJSON)),
		FromFile: aName,
		ToFile:   bName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
