// Package thesis scores an investment-thesis text against the four
// qualitative filters (understandability, moat, management, margin of
// safety) and derives bias risks, an inversion prompt and an overall
// posture. Everything here is a pure function over the input strings
// and the static keyword tables.
package thesis

// Analyze runs the full pipeline: four filter verdicts, inversion
// prompt, bias ranking, posture, rendered report. peText and
// fcfYieldText may be empty; unparsable values degrade to Needs Data.
func Analyze(thesisText, peText, fcfYieldText string) Snapshot {
	filters := map[string]FilterVerdict{
		FilterUnderstandable: ScoreUnderstandable(thesisText),
		FilterMoat:           ScoreMoat(thesisText),
		FilterManagement:     ScoreManagement(thesisText),
		FilterMarginOfSafety: ScoreMarginOfSafety(peText, fcfYieldText),
	}

	invert := InversionPrompt(thesisText, filters[FilterMoat])
	biases := RankBiases(thesisText)
	posture := DecidePosture(filters)

	return Snapshot{
		Filters:         filters,
		InversionPrompt: invert,
		BiasRisks:       biases,
		Posture:         posture,
		RenderedReport:  RenderReport(filters, invert, biases, posture),
	}
}
