// Package credits implements the credit-cost calculation for Copilot
// messages: primitive text measurements, the individual scoring rules, and
// the calculator that composes them into a billable amount.
//
// Everything in this package is a pure function of the message text. No I/O,
// no clocks, no shared state; the same input always produces the same output,
// so a batch of messages can be scored in any order or in parallel.
package credits

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordRE matches a "word" for billing purposes: one or more ASCII letters,
// apostrophes, or hyphens. Contractions ("Isn't") and hyphenated compounds
// ("real-estate") count as a single word; digits and punctuation delimit.
var wordRE = regexp.MustCompile(`[A-Za-z'-]+`)

// Metrics is a read-only view of the measurements the scoring rules consume.
// Build one with Analyze.
type Metrics struct {
	// Length is the number of Unicode code points in the raw text.
	// Counted in runes, not bytes, so multi-byte characters bill as one.
	Length int

	// Words holds every wordRE match in first-occurrence order,
	// case preserved.
	Words []string

	// Palindrome reports whether the whole message reads the same
	// backwards once lowercased and stripped to ASCII alphanumerics.
	Palindrome bool

	// PositionalVowelHits counts vowels sitting at a 1-indexed position
	// divisible by three.
	PositionalVowelHits int
}

// Analyze extracts all metrics from raw message text. It never fails; the
// empty string yields zero metrics (and is vacuously a palindrome).
func Analyze(text string) Metrics {
	return Metrics{
		Length:              utf8.RuneCountInString(text),
		Words:               ExtractWords(text),
		Palindrome:          IsPalindrome(text),
		PositionalVowelHits: PositionalVowelHits(text),
	}
}

// ExtractWords returns the non-overlapping wordRE matches of text, scanned
// left to right. Returns an empty slice, never nil, when nothing matches.
func ExtractWords(text string) []string {
	words := wordRE.FindAllString(text, -1)
	if words == nil {
		return []string{}
	}
	return words
}

// IsPalindrome lowercases the text, strips every character that is not an
// ASCII letter or digit, and tests the result against its own reversal.
// The check runs over the full message, not per word, so phrases like
// "A man a plan a canal Panama" qualify.
func IsPalindrome(text string) bool {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// PositionalVowelHits counts characters that are both at a 1-indexed
// position divisible by three and a vowel (either case). Positions are
// counted in runes to stay consistent with Length.
func PositionalVowelHits(text string) int {
	hits := 0
	i := 0
	for _, r := range text {
		i++
		if i%3 != 0 {
			continue
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			hits++
		}
	}
	return hits
}
