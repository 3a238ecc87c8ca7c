// Package mdmeta derives page metadata (front matter, content title, excerpt,
// heading anchors) from raw Markdown source without a render pass. It is a
// best-effort line-oriented micro-parser: MDX import/export statements,
// custom `{#id}` heading annotations, and unterminated code fences all
// degrade gracefully instead of failing. The one operation that can fail is
// front matter decoding.
package mdmeta

import (
	"github.com/goliatone/go-mdmeta/internal/logging"
	"github.com/goliatone/go-mdmeta/pkg/interfaces"
)

// ParsedMarkdownString aggregates the full metadata pass over one document.
// ContentTitle and Excerpt are empty when nothing qualified.
type ParsedMarkdownString struct {
	FrontMatter  map[string]any
	ContentTitle string
	Excerpt      string
	Content      string
}

// ParseMarkdownStringOptions configure ParseMarkdownString.
type ParseMarkdownStringOptions struct {
	// RemoveContentTitle strips the detected page title from the returned
	// content.
	RemoveContentTitle bool
	// Logger receives the diagnostic emitted when front matter fails to
	// parse. Defaults to a no-op logger.
	Logger interfaces.Logger
}

// ParseMarkdownString runs front matter extraction, content title detection,
// and excerpt derivation over text in one call. A front matter failure is
// logged with a hint and returned unchanged; this function adds no failure
// kind of its own.
func ParseMarkdownString(text string, opts *ParseMarkdownStringOptions) (ParsedMarkdownString, error) {
	options := ParseMarkdownStringOptions{}
	if opts != nil {
		options = *opts
	}

	logger := options.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	parsed, err := ParseFrontMatter(text)
	if err != nil {
		logger.Error(
			"error while parsing front matter; it likely contains special characters that need quoting",
			"error", err,
		)
		return ParsedMarkdownString{}, err
	}

	titled := ParseMarkdownContentTitle(parsed.Content, &ParseMarkdownContentTitleOptions{
		RemoveContentTitle: options.RemoveContentTitle,
	})

	return ParsedMarkdownString{
		FrontMatter:  parsed.FrontMatter,
		ContentTitle: titled.ContentTitle,
		Excerpt:      CreateExcerpt(titled.Content),
		Content:      titled.Content,
	}, nil
}
