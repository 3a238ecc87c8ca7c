package mdmeta

import (
	goerrors "github.com/goliatone/go-errors"
)

const frontMatterSyntaxCode = "FRONT_MATTER_SYNTAX"

// wrapFrontMatterError attaches the validation category and text code to a
// decoder failure. Errors already carrying the go-errors envelope pass
// through unchanged so call sites can re-raise without double wrapping.
func wrapFrontMatterError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "front matter block could not be parsed").
		WithTextCode(frontMatterSyntaxCode)
}

// IsFrontMatterSyntaxError reports whether err originated from a malformed
// front matter block. Every other operation in this package is total and
// never returns an error.
func IsFrontMatterSyntaxError(err error) bool {
	if err == nil {
		return false
	}
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
