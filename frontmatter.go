package mdmeta

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// ParsedFrontMatter is the result of splitting a document into its leading
// metadata block and body content. FrontMatter is whatever mapping the
// delimited block decodes to; no schema is enforced here.
type ParsedFrontMatter struct {
	FrontMatter map[string]any
	Content     string
}

// ParseFrontMatter extracts an optional leading front matter block from text.
// Any format the underlying matter decoder understands is accepted (YAML
// `---`, TOML `+++`, JSON). When no block is present the whole input comes
// back as trimmed content with an empty mapping. A block whose body cannot be
// decoded fails with a front matter syntax error; it is the only failure this
// package produces.
func ParseFrontMatter(text string) (ParsedFrontMatter, error) {
	var data map[string]any

	body, err := frontmatter.Parse(strings.NewReader(text), &data)
	if err != nil {
		return ParsedFrontMatter{}, wrapFrontMatterError(err)
	}

	if data == nil {
		data = map[string]any{}
	}

	return ParsedFrontMatter{
		FrontMatter: data,
		Content:     strings.TrimSpace(string(body)),
	}, nil
}
