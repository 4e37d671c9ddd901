package form

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength = 254
	maxLocalLength = 64
)

// emailAddress is the WHATWG valid-email grammar: dot-separated atext local
// part, hostname labels of up to 63 characters not starting or ending with a
// dash.
var emailAddress = regexp.MustCompile(
	"^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

func validEmail(s string) bool {
	if len(s) > maxEmailLength {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at < 1 || at > maxLocalLength {
		return false
	}
	return emailAddress.MatchString(s)
}
