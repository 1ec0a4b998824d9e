package utils

import "regexp"

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CountChars returns the rune count of text, total and excluding whitespace.
func CountChars(text string) (total int, nonSpace int) {
	runes := []rune(text)
	stripped := []rune(whitespaceRegex.ReplaceAllString(text, ""))
	return len(runes), len(stripped)
}
