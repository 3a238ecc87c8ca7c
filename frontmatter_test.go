package mdmeta

import (
	"os"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	parsed, err := ParseFrontMatter("---\ntitle: Hi\n---\nBody")
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if parsed.FrontMatter["title"] != "Hi" {
		t.Fatalf("front matter title mismatch: %#v", parsed.FrontMatter)
	}
	if parsed.Content != "Body" {
		t.Fatalf("expected trimmed body, got %q", parsed.Content)
	}
}

func TestParseFrontMatter_Fixture(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	parsed, err := ParseFrontMatter(string(data))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if parsed.FrontMatter["title"] != "Sample Document" {
		t.Fatalf("front matter title mismatch: %#v", parsed.FrontMatter)
	}
	if parsed.FrontMatter["custom_flag"] != true {
		t.Fatalf("front matter custom flag missing: %#v", parsed.FrontMatter)
	}
	tags, ok := parsed.FrontMatter["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "docs" {
		t.Fatalf("front matter tags mismatch: %#v", parsed.FrontMatter["tags"])
	}
	if !strings.HasPrefix(parsed.Content, "# Sample Document") {
		t.Fatalf("body not returned correctly: %q", parsed.Content)
	}
	if strings.HasSuffix(parsed.Content, "\n") {
		t.Fatalf("expected right-trimmed body, got %q", parsed.Content)
	}
}

func TestParseFrontMatter_TOML(t *testing.T) {
	parsed, err := ParseFrontMatter("+++\ntitle = \"Hi\"\n+++\nBody")
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if parsed.FrontMatter["title"] != "Hi" {
		t.Fatalf("front matter title mismatch: %#v", parsed.FrontMatter)
	}
	if parsed.Content != "Body" {
		t.Fatalf("expected trimmed body, got %q", parsed.Content)
	}
}

func TestParseFrontMatter_NoBlock(t *testing.T) {
	parsed, err := ParseFrontMatter("\n\n# Hello\n\nBody\n")
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if len(parsed.FrontMatter) != 0 {
		t.Fatalf("expected empty front matter, got %#v", parsed.FrontMatter)
	}
	if parsed.Content != "# Hello\n\nBody" {
		t.Fatalf("expected whole trimmed input as content, got %q", parsed.Content)
	}
}

func TestParseFrontMatter_Malformed(t *testing.T) {
	_, err := ParseFrontMatter("---\nfoo: : bar\n---\n")
	if err == nil {
		t.Fatalf("expected a parse error for malformed front matter")
	}
	if !IsFrontMatterSyntaxError(err) {
		t.Fatalf("expected a front matter syntax error, got %v", err)
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
