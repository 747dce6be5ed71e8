package format

// TruncateWithEllipsis truncates a string to maxWidth characters, appending
// "..." if the string exceeds the limit. Truncation counts runes so a
// multi-byte character is never split. If maxWidth is less than 4, the
// string is hard-truncated without an ellipsis suffix.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}

	if maxWidth < 4 {
		return string(runes[:maxWidth])
	}

	return string(runes[:maxWidth-3]) + "..."
}
