package guestlist

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// sanitize trims the input, strips any markup and removes leftover
// angle brackets, so stored fields never contain them.
func sanitize(s string) string {
	clean := html.UnescapeString(policy.Sanitize(strings.TrimSpace(s)))
	return strings.NewReplacer("<", "", ">", "").Replace(clean)
}
