// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips markup from free-text profile fields before
// they are stored. Bios and status lines are rendered into other
// attendees' dashboards, so they must never carry live HTML.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Plain returns s with all HTML elements removed and surrounding
// whitespace trimmed.
func Plain(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
