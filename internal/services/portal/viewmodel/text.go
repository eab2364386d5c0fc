package viewmodel

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Truncate returns text unchanged when it has at most maxLen characters,
// otherwise its first maxLen characters followed by Ellipsis. Characters are
// counted on the NFC form so a base letter and its combining accent count as
// one and are never split apart; a cut result is NFC.
func Truncate(text string, maxLen int) string {
	maxLen = max(maxLen, 0)
	composed := norm.NFC.String(text)
	if utf8.RuneCountInString(composed) <= maxLen {
		return text
	}
	count := 0
	for i := range composed {
		if count == maxLen {
			return composed[:i] + Ellipsis
		}
		count++
	}
	return composed
}

// HumanizeStatus turns a status value into sentence-case display text:
// "digital_only" becomes "Digital only". Empty input stays empty.
func HumanizeStatus(status string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(status))
	if len(words) == 0 {
		return ""
	}
	// Casers carry state, so each call gets its own.
	head := cases.Title(language.Und).String(words[0])
	if len(words) == 1 {
		return head
	}
	rest := cases.Lower(language.Und).String(strings.Join(words[1:], " "))
	return head + " " + rest
}
