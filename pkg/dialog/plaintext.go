package dialog

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)

// PlainText converts a message body to terminal text: <br> becomes a newline,
// every other tag is dropped and entities are decoded.
func PlainText(body string) string {
	withBreaks := lineBreak.ReplaceAllString(body, "\n")
	stripped := textSanitizer().Sanitize(withBreaks)
	lines := strings.Split(html.UnescapeString(stripped), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
