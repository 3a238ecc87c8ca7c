package mdmeta

import (
	"regexp"
	"strings"
)

var (
	customHeadingIDRe = regexp.MustCompile(`\s*\{#([\w-]+)\}$`)
	anchorHeadingRe   = regexp.MustCompile(`^(#{2,})([ \t]+)(.*)$`)
	headingLineRe     = regexp.MustCompile(`(?m)^#{1,6}(?:[^#\n][^\n]*)?$`)
	inlineLinkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	referenceLinkRe   = regexp.MustCompile(`\[([^\]]*)\]\[[^\]]*\]`)
)

// ParsedHeadingID is the result of splitting a heading line into its visible
// text and an optional {#id} annotation. An empty ID means the line carried
// no annotation.
type ParsedHeadingID struct {
	Text string
	ID   string
}

// WriteHeadingIDOptions configure WriteMarkdownHeadingIDs.
type WriteHeadingIDOptions struct {
	// MaintainCase keeps the heading's letter case in generated ids.
	MaintainCase bool
	// Overwrite recomputes ids for headings that already carry one.
	Overwrite bool
}

// ParseMarkdownHeadingID detects a trailing custom-ID annotation of the form
// `{#id}` on a heading line. When present, the returned text has the
// annotation (and the whitespace before it) removed.
func ParseMarkdownHeadingID(heading string) ParsedHeadingID {
	match := customHeadingIDRe.FindStringSubmatch(heading)
	if match == nil {
		return ParsedHeadingID{Text: heading}
	}
	return ParsedHeadingID{
		Text: customHeadingIDRe.ReplaceAllString(heading, ""),
		ID:   match[1],
	}
}

// WriteMarkdownHeadingIDs rewrites content so that every heading of level two
// or deeper carries an explicit `{#id}` anchor. The page-level H1 is left
// alone. Ids are generated through a Slugger scoped to this call, so within
// one document no two anchors collide. With Overwrite false the pass is
// idempotent: headings that already carry an id are returned unchanged and
// their ids are reserved before any new id is generated.
func WriteMarkdownHeadingIDs(content string, opts *WriteHeadingIDOptions) string {
	options := WriteHeadingIDOptions{}
	if opts != nil {
		options = *opts
	}

	lines := strings.Split(content, "\n")
	slugger := NewSlugger()

	// Anchors the pass will leave untouched still occupy their slugs, so
	// generated ids cannot collide with them.
	if !options.Overwrite {
		for _, line := range lines {
			if parsed := ParseMarkdownHeadingID(line); parsed.ID != "" {
				slugger.Slug(parsed.ID, SlugOptions{})
			}
		}
	}

	inCode := false
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			out[i] = line
			continue
		}
		if inCode {
			out[i] = line
			continue
		}

		match := anchorHeadingRe.FindStringSubmatch(line)
		if match == nil {
			out[i] = line
			continue
		}

		hashes, spacing := match[1], match[2]
		parsed := ParseMarkdownHeadingID(match[3])
		if parsed.ID != "" && !options.Overwrite {
			out[i] = line
			continue
		}

		// Links contribute their visible text to the slug; the heading
		// line itself keeps them.
		id := slugger.Slug(UnwrapMarkdownLinks(parsed.Text), SlugOptions{
			MaintainCase: options.MaintainCase,
		})
		out[i] = hashes + spacing + strings.TrimRight(parsed.Text, " \t") + " {#" + id + "}"
	}

	return strings.Join(out, "\n")
}

// UnwrapMarkdownLinks collapses inline `[text](url)` and reference-style
// `[text][ref]` links down to their visible text.
func UnwrapMarkdownLinks(line string) string {
	line = inlineLinkRe.ReplaceAllString(line, "$1")
	return referenceLinkRe.ReplaceAllString(line, "$1")
}

// EscapeMarkdownHeadingIDs escapes `{#id}` annotations on heading lines as
// `\{#id}` so a downstream MDX compiler treats them as literal text instead
// of an expression.
func EscapeMarkdownHeadingIDs(content string) string {
	return headingLineRe.ReplaceAllStringFunc(content, func(heading string) string {
		heading = strings.Replace(heading, "{#", `\{#`, 1)
		// Collapse a double escape so repeated passes over the same
		// content stay stable.
		return strings.Replace(heading, `\\{#`, `\{#`, 1)
	})
}
