// Package catalog holds the pure transformations the storefront applies to the
// product list: filtering, sorting and price aggregation. Nothing here mutates
// its input.
package catalog

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// DeriveKey turns a display name into a filter key: lowercase, whitespace
// runs replaced by a single hyphen. "Louis Vuitton" -> "louis-vuitton".
func DeriveKey(name string) string {
	return reSpaces.ReplaceAllString(strings.ToLower(name), "-")
}
