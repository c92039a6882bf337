package thesis

import "strings"

// RankBiases returns the top bias risks for the thesis: triggered
// categories first, then untriggered ones as filler, both in table
// order, truncated to biasRiskCount. Two ordered passes, not a sort:
// the table order is the priority.
func RankBiases(thesisText string) []string {
	text := strings.ToLower(thesisText)

	triggered := make(map[string]bool, len(biasCategories))
	for _, cat := range biasCategories {
		for _, keyword := range cat.Keywords {
			if strings.Contains(text, keyword) {
				triggered[cat.Name] = true
				break
			}
		}
	}

	ranked := make([]string, 0, len(biasCategories))
	for _, cat := range biasCategories {
		if triggered[cat.Name] {
			ranked = append(ranked, cat.Name)
		}
	}
	for _, cat := range biasCategories {
		if !triggered[cat.Name] {
			ranked = append(ranked, cat.Name)
		}
	}

	if len(ranked) > biasRiskCount {
		ranked = ranked[:biasRiskCount]
	}
	return ranked
}
