package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	reQ      = regexp.MustCompile(`^[^<>\p{C}]{1,50}$`)
	reKey    = regexp.MustCompile(`^[\p{Ll}\p{N}+-]{1,40}$`)
	reSize   = regexp.MustCompile(`^[A-Za-z0-9 .]{1,12}$`)
	reSeller = regexp.MustCompile(`^[\p{L}\p{N} &'.,-]{1,80}$`)
)

// Q validates a search query: trims and truncates to 50 runes. Any printable
// text is allowed except angle brackets. An empty query is not valid; callers
// treat it as "no query".
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) > 50 {
		s = strings.TrimSpace(string([]rune(s)[:50]))
	}
	return s, reQ.MatchString(s)
}

// ID validates a catalog product identifier.
func ID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Key validates a filter key such as a category, brand or price range value.
// Empty is allowed and means "no filter".
func Key(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reKey.MatchString(s)
}

// Size validates a shoe/garment size label like "US 9.5".
func Size(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSize.MatchString(s)
}

// Seller validates a seller name posted back from a product page.
func Seller(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSeller.MatchString(s)
}
