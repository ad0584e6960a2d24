package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestDumpASTFileProducesFileDeclRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "id.kd", "fun id(x) => x")

	dump, err := dumpASTFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dump.Kind != "FileDecl" {
		t.Fatalf("expected FileDecl root, got %q", dump.Kind)
	}
}

func TestDumpRLTFileParsesImplicitGlobalModule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "id.kd", "fun id(x) => x")

	file, err := dumpRLTFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(file.Modules) != 1 {
		t.Fatalf("expected one implicit global module, got %d", len(file.Modules))
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	exitCode := 0
	root := newRootCmd(&exitCode)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"check", "dump-ast", "dump-rlt"} {
		if !names[want] {
			t.Fatalf("expected a %q subcommand to be registered", want)
		}
	}
}
