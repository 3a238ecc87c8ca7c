package mdmeta

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	setextLeadRe   = regexp.MustCompile(`^[^\r\n]*\r?\n=+`)
	lineBreakRe    = regexp.MustCompile(`\r?\n`)
	importExportRe = regexp.MustCompile(`^(?:import|export)\s`)
	fenceMarkRe    = regexp.MustCompile("^`+")
)

// excerptCleaner is one step of the excerpt cleaning chain. Steps marked
// firstOnly replace a single occurrence, the rest replace every match.
type excerptCleaner struct {
	re        *regexp.Regexp
	repl      string
	firstOnly bool
}

// excerptCleaners run left to right over a candidate line. The order is a
// contract: images collapse before links, links before inline code, HTML
// before everything. Reordering the steps changes observable output on
// nested constructs such as **[text](url)**.
var excerptCleaners = []excerptCleaner{
	// HTML tags
	{re: regexp.MustCompile(`<[^>]*>`), repl: ""},
	// page title marker (single # heading is dropped whole)
	{re: regexp.MustCompile(`^#[^#]+#?`), repl: ""},
	// remaining ATX heading markers unwrap to their text
	{re: regexp.MustCompile(`^#{1,6}\s*([^#]*)\s*#{0,6}`), repl: "${1}"},
	// emphasis and bold, longest marker first
	{re: regexp.MustCompile(`\*\*\*(.*?)\*\*\*`), repl: "${1}"},
	{re: regexp.MustCompile(`___(.*?)___`), repl: "${1}"},
	{re: regexp.MustCompile(`\*\*(.*?)\*\*`), repl: "${1}"},
	{re: regexp.MustCompile(`__(.*?)__`), repl: "${1}"},
	{re: regexp.MustCompile(`\*(.*?)\*`), repl: "${1}"},
	{re: regexp.MustCompile(`_(.*?)_`), repl: "${1}"},
	// strikethrough
	{re: regexp.MustCompile(`~~(\S.*\S)~~`), repl: "${1}"},
	// images collapse to their alt text
	{re: regexp.MustCompile(`!\[(.*?)\][\[(].*?[\])]`), repl: "${1}"},
	// footnote markers and definitions
	{re: regexp.MustCompile(`\[\^.+?\](?::.*$)?`), repl: ""},
	// inline links collapse to their text
	{re: regexp.MustCompile(`\[(.*?)\][\[(].*?[\])]`), repl: "${1}"},
	// inline code spans
	{re: regexp.MustCompile("`(.+?)`"), repl: "${1}"},
	// blockquote marker
	{re: regexp.MustCompile(`^\s{0,3}>\s?`), repl: ""},
	// admonition fence truncates the line
	{re: regexp.MustCompile(`:::.*`), repl: "", firstOnly: true},
	// emoji name tokens, including one preceding whitespace character
	{re: regexp.MustCompile(`\s?:(?:::|[^:\n])+:`), repl: ""},
	// custom heading id annotation
	{re: regexp.MustCompile(`\{#*[\w-]+\}`), repl: "", firstOnly: true},
}

// CreateExcerpt derives a short plain-text preview from the first contentful
// line of fileString, skipping headings, import/export declarations, and
// fenced code. It returns the empty string when no line survives cleaning.
// An unterminated fence suppresses every line after it; documents that end
// inside a code block simply yield no excerpt.
func CreateExcerpt(fileString string) string {
	leading := strings.TrimLeftFunc(fileString, unicode.IsSpace)
	// Drop a Setext H1 (title line plus = underline) so it cannot leak
	// into the excerpt.
	leading = setextLeadRe.ReplaceAllString(leading, "")

	inCode := false
	inImport := false
	lastCodeFence := ""

	for _, line := range lineBreakRe.Split(leading, -1) {
		// A blank line ends an open import block, and is then skipped
		// like any other blank line.
		if line == "" && inImport {
			inImport = false
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if (importExportRe.MatchString(line) || inImport) && !inCode {
			inImport = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			fence := fenceMarkRe.FindString(trimmed)
			if !inCode {
				inCode = true
				lastCodeFence = fence
			} else if len(fence) >= len(lastCodeFence) {
				// A shorter run inside a longer-fenced block is
				// literal text, not a closer.
				inCode = false
			}
			continue
		}
		if inCode {
			continue
		}

		if cleaned := cleanExcerptLine(line); cleaned != "" {
			return cleaned
		}
	}

	return ""
}

func cleanExcerptLine(line string) string {
	for _, step := range excerptCleaners {
		if step.firstOnly {
			line = replaceFirst(step.re, line, step.repl)
			continue
		}
		line = step.re.ReplaceAllString(line, step.repl)
	}
	return strings.TrimSpace(line)
}

// replaceFirst substitutes only the first match of re in s.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + re.ReplaceAllString(s[loc[0]:loc[1]], repl) + s[loc[1]:]
}
