// Package email holds small helpers for owner e-mail addresses.
package email

import (
	"net/mail"
	"strings"
	"unicode"
)

// Normalize returns the bare, lower-cased address when raw parses as a single
// RFC 5322 mailbox. Display names are dropped.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}

// GreetingName guesses a first name from the local part, so
// "maria.silva@example.com" greets "Maria". Falls back to fallback when
// nothing usable is left.
func GreetingName(address, fallback string) string {
	local := address
	if at := strings.IndexByte(address, '@'); at > 0 {
		local = address[:at]
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || unicode.IsDigit(r)
	})
	if len(parts) == 0 {
		return fallback
	}

	runes := []rune(strings.ToLower(parts[0]))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
