package thesis

import (
	"fmt"
	"slices"
	"strings"
)

// Understandable filter thresholds
const (
	maxFirstSentenceWords = 30
	longWordLength        = 12
	maxLongWordRatio      = 0.2
	maxParagraphs         = 2
)

// Margin-of-safety guardrails
const (
	maxPERatio  = 15.0
	minFCFYield = 6.0
)

// ScoreUnderstandable checks the thesis for a short hook sentence,
// tolerable jargon density and a tight paragraph count.
func ScoreUnderstandable(thesisText string) FilterVerdict {
	cleaned := strings.TrimSpace(thesisText)
	if cleaned == "" {
		return FilterVerdict{Status: StatusFail, Details: "Add a concise thesis summary."}
	}

	sentences := SplitSentences(cleaned)
	words := TokenizeWords(cleaned)
	var firstSentenceWords []string
	if len(sentences) > 0 {
		firstSentenceWords = TokenizeWords(sentences[0])
	}

	longWords := 0
	for _, w := range words {
		if len(w) > longWordLength {
			longWords++
		}
	}
	longWordRatio := 0.0
	if len(words) > 0 {
		longWordRatio = float64(longWords) / float64(len(words))
	}

	summaryOK := len(firstSentenceWords) <= maxFirstSentenceWords
	jargonOK := longWordRatio <= maxLongWordRatio
	segmentsOK := CountParagraphs(cleaned) <= maxParagraphs

	if summaryOK && jargonOK && segmentsOK {
		return FilterVerdict{Status: StatusPass, Details: "Clear one-sentence hook; jargon in check."}
	}

	var misses []string
	if !summaryOK {
		misses = append(misses, "Add a <=30 word summary line up top.")
	}
	if !jargonOK {
		misses = append(misses, "High jargon density—clarify plain language.")
	}
	if !segmentsOK {
		misses = append(misses, "Too many disjoint segments—tighten focus.")
	}
	return FilterVerdict{Status: StatusFail, Details: strings.Join(misses, " ")}
}

// matchLabels collects labels for table keywords found in text,
// deduped by label, in table order. text must already be lowercased.
func matchLabels(text string, table []keywordLabel) []string {
	var hits []string
	for _, entry := range table {
		if strings.Contains(text, entry.Keyword) && !slices.Contains(hits, entry.Label) {
			hits = append(hits, entry.Label)
		}
	}
	return hits
}

// ScoreMoat looks for named moat types in the thesis.
func ScoreMoat(thesisText string) FilterVerdict {
	hits := matchLabels(strings.ToLower(thesisText), moatKeywords)
	if len(hits) > 0 {
		return FilterVerdict{
			Status:          StatusPass,
			Details:         strings.Join(hits, ", "),
			MatchedKeywords: hits,
		}
	}
	return FilterVerdict{
		Status:  StatusFail,
		Details: "Spell out the moat (network effects, switching costs, brand, cost advantage).",
	}
}

// ScoreManagement weighs positive ownership signals against red flags.
// A single red flag overrides any number of positives.
func ScoreManagement(thesisText string) FilterVerdict {
	text := strings.ToLower(thesisText)

	redFlags := matchLabels(text, managementRedFlags)
	if len(redFlags) > 0 {
		return FilterVerdict{Status: StatusFail, Details: "Red flags: " + strings.Join(redFlags, ", ")}
	}

	positives := matchLabels(text, managementPositive)
	if len(positives) > 0 {
		return FilterVerdict{Status: StatusPass, Details: strings.Join(positives, ", ")}
	}

	return FilterVerdict{
		Status:  StatusFail,
		Details: "Note owner-operator traits, insider ownership, or capital allocation history.",
	}
}

// ScoreMarginOfSafety judges valuation from optional P/E and FCF-yield
// inputs. The P/E guardrail wins over the yield bar when both parse.
func ScoreMarginOfSafety(peText, fcfYieldText string) FilterVerdict {
	pe, peOK := ParseLeadingNumber(peText)
	fcfYield, fcfOK := ParseLeadingNumber(fcfYieldText)

	if peOK && pe <= maxPERatio {
		return FilterVerdict{
			Status:  StatusPass,
			Details: fmt.Sprintf("P/E %.1f within <=15 guardrail.", pe),
		}
	}
	if fcfOK && fcfYield >= minFCFYield {
		return FilterVerdict{
			Status:  StatusPass,
			Details: fmt.Sprintf("FCF yield %.1f%% clears >=6%% bar.", fcfYield),
		}
	}

	if peOK || fcfOK {
		var details []string
		if peOK {
			details = append(details, fmt.Sprintf("P/E %.1f > 15", pe))
		}
		if fcfOK {
			details = append(details, fmt.Sprintf("FCF yield %.1f%% < 6%%", fcfYield))
		}
		return FilterVerdict{Status: StatusFail, Details: strings.Join(details, "; ")}
	}

	return FilterVerdict{Status: StatusNeedsData, Details: "— add P/E or FCF-yield to judge MOS."}
}
