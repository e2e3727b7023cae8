// Package redact scrubs sensitive fragments from strings before they are
// logged: connection strings, passwords, email addresses and raw SQL. Raw
// database errors routinely embed all four.
package redact

import "regexp"

// Placeholders substituted for matched fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
)

var (
	// Connection strings with inline credentials, e.g. postgres://u:p@host.
	connStringRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// password=..., pwd: ... and similar key/value credential fragments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Leading SQL statements as surfaced by driver error messages.
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|WHERE)(?:[\s\w,*()='"$]+)?`,
	)

	replacements = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{connStringRegex, CredentialPlaceholder},
		{passwordRegex, CredentialPlaceholder},
		{sqlRegex, SQLPlaceholder},
		{emailRegex, EmailPlaceholder},
	}
)

// String redacts sensitive fragments from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive fragments from an error's message.
// Returns "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
