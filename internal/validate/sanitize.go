package validate

import (
	"strings"
	"unicode"
)

// SanitizeCompanyName trims a company name and drops control characters.
func SanitizeCompanyName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// SanitizeComment cleans a note for storage. Newlines and tabs survive.
func SanitizeComment(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(StripControlChars(text))
}

// StripControlChars removes all control characters except newline and tab.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateString truncates s to maxLen runes, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
