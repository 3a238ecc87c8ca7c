package mdmeta

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"
)

// SlugOptions control how a heading candidate is normalized before the
// collision check runs.
type SlugOptions struct {
	// MaintainCase keeps the original letter case instead of folding the
	// candidate to lower case.
	MaintainCase bool
}

// Slugger issues URL-safe identifiers that are unique for the lifetime of the
// instance. Scope one Slugger to one document: sharing an instance across
// documents makes unrelated headings disambiguate against each other.
type Slugger struct {
	occupied map[string]struct{}
}

// NewSlugger returns a Slugger with an empty occupied set.
func NewSlugger() *Slugger {
	return &Slugger{occupied: make(map[string]struct{})}
}

// Slug normalizes value and returns a token no previous call on this instance
// has returned. Duplicate candidates receive a numeric -N suffix.
func (s *Slugger) Slug(value string, opts SlugOptions) string {
	base := normalizeSlug(value, opts.MaintainCase)

	candidate := base
	for i := 1; s.Has(candidate); i++ {
		candidate = base + "-" + strconv.Itoa(i)
	}
	s.occupied[candidate] = struct{}{}
	return candidate
}

// Has reports whether the slug is already occupied on this instance.
func (s *Slugger) Has(value string) bool {
	_, ok := s.occupied[value]
	return ok
}

// normalizeSlug delegates to go-slug for the case-folded default. The
// MaintainCase path keeps letter case, which go-slug does not support, so it
// runs an equivalent local transform instead.
func normalizeSlug(value string, maintainCase bool) string {
	if !maintainCase {
		if normalized, err := slug.Normalize(value); err == nil && normalized != "" {
			return normalized
		}
	}
	return asciiSlug(value, maintainCase)
}

// asciiSlug keeps letters, digits, and underscores, collapses every other run
// of characters to a single dash, and trims edge dashes.
func asciiSlug(value string, maintainCase bool) string {
	var b strings.Builder
	b.Grow(len(value))

	prevDash := false
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if !maintainCase {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
