package thesis

import "strings"

// InversionPrompt picks the "what could break this" question for the
// thesis. Rules are walked in priority order; a rule fires when one of
// its triggers appears in the thesis text, or inside one of the moat
// filter's matched labels.
func InversionPrompt(thesisText string, moat FilterVerdict) string {
	text := strings.ToLower(thesisText)

	labels := make([]string, 0, len(moat.MatchedKeywords))
	for _, hit := range moat.MatchedKeywords {
		labels = append(labels, strings.ToLower(hit))
	}

	for _, rule := range inversionRules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(text, trigger) {
				return rule.Prompt
			}
		}
		for _, label := range labels {
			for _, trigger := range rule.Triggers {
				if strings.Contains(label, trigger) {
					return rule.Prompt
				}
			}
		}
	}
	return genericInversionPrompt
}
