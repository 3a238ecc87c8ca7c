package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-mdmeta/cmd/mdmeta/internal/bootstrap"
	"github.com/goliatone/go-mdmeta/internal/logging"
)

func TestDiscoverFiles(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.md"), "# B\n")
	writeTestFile(t, filepath.Join(root, "sub", "a.md"), "# A\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "skip me\n")

	paths, err := discoverFiles(root, "*.md")
	if err != nil {
		t.Fatalf("discoverFiles returned error: %v", err)
	}

	want := []string{
		filepath.Join(root, "b.md"),
		filepath.Join(root, "sub", "a.md"),
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), paths)
	}
	for i, path := range want {
		if paths[i] != path {
			t.Fatalf("path %d mismatch: got %q, want %q", i, paths[i], path)
		}
	}
}

func TestDiscoverFilesSingleFileRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "page.markdown")
	writeTestFile(t, file, "# Page\n")

	paths, err := discoverFiles(file, "*.md")
	if err != nil {
		t.Fatalf("discoverFiles returned error: %v", err)
	}
	if len(paths) != 1 || paths[0] != file {
		t.Fatalf("expected single-file passthrough, got %v", paths)
	}
}

func TestDiscoverFilesMissingRoot(t *testing.T) {
	if _, err := discoverFiles(filepath.Join(t.TempDir(), "absent"), "*.md"); err == nil {
		t.Fatal("expected error for missing content root")
	}
}

func TestRunWriteHeadingIDsRewritesFiles(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Logger: logging.NoOp()}, nil
	}

	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeTestFile(t, path, "# Page\n\n## Some Section\n")

	if err := runWriteHeadingIDs([]string{"-content-dir", root}); err != nil {
		t.Fatalf("runWriteHeadingIDs returned error: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read updated file: %v", err)
	}
	if !strings.Contains(string(updated), "## Some Section {#some-section}") {
		t.Fatalf("expected anchored heading, got %q", updated)
	}
}

func TestRunWriteHeadingIDsDryRunLeavesFiles(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Logger: logging.NoOp()}, nil
	}

	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	source := "## Some Section\n"
	writeTestFile(t, path, source)

	if err := runWriteHeadingIDs([]string{"-content-dir", root, "-dry-run"}); err != nil {
		t.Fatalf("runWriteHeadingIDs returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(got) != source {
		t.Fatalf("dry run must not rewrite files, got %q", got)
	}
}

func writeTestFile(tb testing.TB, path, content string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}
