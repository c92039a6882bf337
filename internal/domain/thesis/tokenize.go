package thesis

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	wordPattern    = regexp.MustCompile(`[a-zA-Z0-9']+`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
	numberPattern  = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// TokenizeWords lowercases the text and returns runs of letters, digits
// and apostrophes; everything else is a separator.
func TokenizeWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// SplitSentences splits on runs of sentence punctuation and drops
// empty segments.
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// CountParagraphs counts blank-line separated segments. Text without a
// blank line counts as a single paragraph unless it is empty.
func CountParagraphs(text string) int {
	count := 0
	for _, p := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	if count == 0 && strings.TrimSpace(text) != "" {
		return 1
	}
	return count
}

// ParseLeadingNumber extracts the first decimal number from free-form
// input like "~18", "7%" or "PE 12.5". The second return is false when
// no number is present.
func ParseLeadingNumber(raw string) (float64, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return 0, false
	}
	text = strings.ReplaceAll(text, "%", "")
	text = strings.ReplaceAll(text, "~", "")
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
