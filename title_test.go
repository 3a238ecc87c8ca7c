package mdmeta

import "testing"

func TestParseMarkdownContentTitle(t *testing.T) {
	cases := []struct {
		name        string
		content     string
		remove      bool
		wantTitle   string
		wantContent string
	}{
		{
			name:        "atx title kept",
			content:     "# Hello\n\nBody",
			wantTitle:   "Hello",
			wantContent: "# Hello\n\nBody",
		},
		{
			name:        "atx title removed",
			content:     "# Hello\n\nBody",
			remove:      true,
			wantTitle:   "Hello",
			wantContent: "Body",
		},
		{
			name:        "setext title",
			content:     "Hello\n=====\n\nBody",
			wantTitle:   "Hello",
			wantContent: "Hello\n=====\n\nBody",
		},
		{
			name:        "setext title removed",
			content:     "Hello\n=====\n\nBody",
			remove:      true,
			wantTitle:   "Hello",
			wantContent: "Body",
		},
		{
			name:        "no title",
			content:     "Just a paragraph.\n\n## Subheading",
			wantTitle:   "",
			wantContent: "Just a paragraph.\n\n## Subheading",
		},
		{
			name:        "h2 is not a content title",
			content:     "## Sub\n\nBody",
			wantTitle:   "",
			wantContent: "## Sub\n\nBody",
		},
		{
			name:        "title after import block",
			content:     "import A from 'a';\n\n# Title\n\nBody",
			wantTitle:   "Title",
			wantContent: "import A from 'a';\n\n# Title\n\nBody",
		},
		{
			name:        "title after import block removed keeps imports",
			content:     "import A from 'a';\n\n# Title\n\nBody",
			remove:      true,
			wantTitle:   "Title",
			wantContent: "import A from 'a';\n\n\nBody",
		},
		{
			name:        "removal cuts the real title not an import lookalike",
			content:     "import doc from 'doc';\n# Title\nimport B from 'b';\n\n# Title\n\nBody",
			remove:      true,
			wantTitle:   "Title",
			wantContent: "import doc from 'doc';\n# Title\nimport B from 'b';\n\n\nBody",
		},
		{
			name:        "title not at document start",
			content:     "Intro text first.\n\n# Late Title",
			wantTitle:   "",
			wantContent: "Intro text first.\n\n# Late Title",
		},
		{
			name:        "custom heading id stripped from title",
			content:     "# Hello {#custom-id}\n\nBody",
			wantTitle:   "Hello",
			wantContent: "# Hello {#custom-id}\n\nBody",
		},
		{
			name:        "trailing atx hashes stripped",
			content:     "# Hello ##\n\nBody",
			wantTitle:   "Hello",
			wantContent: "# Hello ##\n\nBody",
		},
		{
			name:        "closing hashes and id annotation both stripped",
			content:     "# Hello ## {#custom-id}\n\nBody",
			wantTitle:   "Hello",
			wantContent: "# Hello ## {#custom-id}\n\nBody",
		},
		{
			name:        "backtick wrapped title unwrapped",
			content:     "# `config.yml`\n\nBody",
			wantTitle:   "config.yml",
			wantContent: "# `config.yml`\n\nBody",
		},
		{
			name:        "surrounding whitespace trimmed",
			content:     "\n\n# Hello\n\nBody\n\n",
			wantTitle:   "Hello",
			wantContent: "# Hello\n\nBody",
		},
		{
			name:        "unterminated import block is not stripped",
			content:     "import A from 'a';\n# Not hoisted",
			wantTitle:   "",
			wantContent: "import A from 'a';\n# Not hoisted",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMarkdownContentTitle(tc.content, &ParseMarkdownContentTitleOptions{
				RemoveContentTitle: tc.remove,
			})

			if got.ContentTitle != tc.wantTitle {
				t.Fatalf("title mismatch: got %q, want %q", got.ContentTitle, tc.wantTitle)
			}
			if got.Content != tc.wantContent {
				t.Fatalf("content mismatch:\ngot  %q\nwant %q", got.Content, tc.wantContent)
			}
		})
	}
}

func TestParseMarkdownContentTitle_NilOptions(t *testing.T) {
	got := ParseMarkdownContentTitle("# Hello\n\nBody", nil)

	if got.ContentTitle != "Hello" {
		t.Fatalf("title mismatch: got %q", got.ContentTitle)
	}
	if got.Content != "# Hello\n\nBody" {
		t.Fatalf("expected content unchanged, got %q", got.Content)
	}
}
