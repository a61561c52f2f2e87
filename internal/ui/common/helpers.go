// Package common provides shared styles and utilities for the UI.
package common

// TruncateName shortens a seat or lobby name to maxLen characters, marking
// the cut with an ellipsis.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}
