package mdmeta

import (
	"regexp"
	"strings"
)

var (
	atxTitleRe        = regexp.MustCompile(`^#[ \t]+(\S[^\n]*)(?:\n|$)`)
	setextTitleRe     = regexp.MustCompile(`^([^\n]+)\n=+[ \t]*(?:\n|$)`)
	titleIDSuffixRe   = regexp.MustCompile(`\s*\{#*[\w-]+\}$`)
	titleHashSuffixRe = regexp.MustCompile(`\s*#+$`)
	backtickWrapRe    = regexp.MustCompile("^`([^`]+)`$")
	importStartRe     = regexp.MustCompile(`^import\s`)
	blankLineRunRe    = regexp.MustCompile(`(?:\r?\n){2,}`)
)

// ParsedContentTitle carries content alongside the detected page-level title.
// An empty ContentTitle means no title was found.
type ParsedContentTitle struct {
	Content      string
	ContentTitle string
}

// ParseMarkdownContentTitleOptions configure ParseMarkdownContentTitle.
type ParseMarkdownContentTitleOptions struct {
	// RemoveContentTitle strips the detected title line(s) from the
	// returned content.
	RemoveContentTitle bool
}

// ParseMarkdownContentTitle finds the page-level H1 of content whose front
// matter has already been removed. Leading MDX import blocks are skipped
// before matching, since an MDX compiler would hoist them above the title.
// ATX form (`# Title`) wins over Setext form (title line underlined with
// `=`); when neither matches, the trimmed content is returned unchanged.
func ParseMarkdownContentTitle(content string, opts *ParseMarkdownContentTitleOptions) ParsedContentTitle {
	removeTitle := opts != nil && opts.RemoveContentTitle

	trimmed := strings.TrimSpace(content)
	prefix := leadingImportBlocks(trimmed)
	rest := trimmed[len(prefix):]

	match := atxTitleRe.FindStringSubmatch(rest)
	if match == nil {
		match = setextTitleRe.FindStringSubmatch(rest)
	}
	if match == nil {
		return ParsedContentTitle{Content: trimmed}
	}

	out := trimmed
	if removeTitle {
		// Cut the title line(s) at the known offset so an identical
		// string inside the import prefix is never touched. Imports end
		// in a blank-line run, so whatever came before the title stays
		// separated from what follows it.
		out = strings.TrimSpace(prefix + rest[len(match[0]):])
	}

	return ParsedContentTitle{
		Content:      out,
		ContentTitle: cleanContentTitle(match[1]),
	}
}

// cleanContentTitle strips a trailing `{#id}` annotation, then a closing `#`
// run, and unwraps a title wrapped in a single pair of backticks. The order
// matters for titles carrying both, such as `# Hello ## {#id}`.
func cleanContentTitle(title string) string {
	cleaned := titleIDSuffixRe.ReplaceAllString(strings.TrimSpace(title), "")
	cleaned = titleHashSuffixRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if match := backtickWrapRe.FindStringSubmatch(cleaned); match != nil {
		return match[1]
	}
	return cleaned
}

// leadingImportBlocks returns the prefix of content made up of `import ...`
// statement blocks. A block starts with the import keyword and runs through
// the first blank-line run (two or more newlines); a trailing block without
// that terminator is not consumed, approximating the declarations an MDX
// compiler would hoist.
func leadingImportBlocks(content string) string {
	offset := 0
	for {
		rest := content[offset:]
		if !importStartRe.MatchString(rest) {
			break
		}
		terminator := blankLineRunRe.FindStringIndex(rest)
		if terminator == nil {
			break
		}
		offset += terminator[1]
	}
	return content[:offset]
}
