package exam

import (
	"regexp"
	"strings"
)

// Some source exams carry inline HTML or entity-escaped fragments (notably
// collapsed <details> blocks with explanations). They are stripped from the
// prompt before display.
var (
	detailsEntityRE = regexp.MustCompile(`(?is)&lt;details.*?&lt;/details&gt;`)
	angleEntityRE   = regexp.MustCompile(`&lt;[^&]*?&gt;`)
	detailsHTMLRE   = regexp.MustCompile(`(?is)<details.*?</details>`)
	anyHTMLTagRE    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRE    = regexp.MustCompile(`\s+`)
)

// CleanPrompt strips HTML and entity-escaped fragments from a prompt and
// collapses runs of whitespace.
func CleanPrompt(text string) string {
	if text == "" {
		return text
	}
	text = detailsEntityRE.ReplaceAllString(text, "")
	text = angleEntityRE.ReplaceAllString(text, "")
	text = detailsHTMLRE.ReplaceAllString(text, "")
	text = anyHTMLTagRE.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
