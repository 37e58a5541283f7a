// Package redact scrubs credentials and personal data from strings before
// they are logged. Tokens, passwords, password hashes, database credentials
// and email addresses never reach a log line in clear text.
package redact

import (
	"log/slog"
	"regexp"
)

// Placeholders substituted for redacted values.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	JWTPlaceholder        = "[REDACTED_JWT]"
	HashPlaceholder       = "[REDACTED_HASH]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	PathPlaceholder       = "[REDACTED_PATH]"
	SQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Rules run in order; earlier rules see the unmodified input.
var rules = []rule{
	{
		re:   regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`),
		repl: JWTPlaceholder,
	},
	{
		re:   regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`),
		repl: "${1}" + TokenPlaceholder,
	},
	{
		re:   regexp.MustCompile(`(?i)(refresh-token\s*:\s*)\S+`),
		repl: "${1}" + TokenPlaceholder,
	},
	{
		re:   regexp.MustCompile(`(?i)\b(postgres(?:ql)?|pgx)://[^\s@/]+@`),
		repl: "${1}://" + CredentialPlaceholder + "@",
	},
	{
		re:   regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		repl: HashPlaceholder,
	},
	{
		re:   regexp.MustCompile(`(?i)((?:password|passwd|pwd|secret)(?:\s*=|"\s*:)\s*)("[^"]*"|[^\s&,;]+)`),
		repl: "${1}" + CredentialPlaceholder,
	},
	{
		re:   regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		repl: EmailPlaceholder,
	},
	{
		re: regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\w,*()$=.]+\b(FROM|INTO|SET)\b[\s\w,*()$=.'"]*`,
		),
		repl: SQLPlaceholder,
	},
	{
		re:   regexp.MustCompile(`(^|[\s(:=])(?:/[\w.-]+){2,}`),
		repl: "${1}" + PathPlaceholder,
	},
}

// String redacts sensitive information from s.
func String(s string) string {
	if s == "" {
		return s
	}
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// Error redacts sensitive information from err's message.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// ErrorAttr returns err as a redacted "error" log attribute.
func ErrorAttr(err error) slog.Attr {
	return slog.String("error", Error(err))
}
