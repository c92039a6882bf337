package thesis

// Status enum for a single filter check
type Status string

const (
	StatusPass      Status = "Pass"
	StatusFail      Status = "Fail"
	StatusNeedsData Status = "Needs Data"
)

// Posture enum for the overall recommendation
type Posture string

const (
	PostureGo   Posture = "Go"
	PostureWait Posture = "Wait"
	PostureNo   Posture = "No"
)

// Filter names. FilterNames fixes the report order; the Filters map
// must never be ranged over for display.
const (
	FilterUnderstandable = "Understandable"
	FilterMoat           = "Moat"
	FilterManagement     = "Management"
	FilterMarginOfSafety = "Margin of Safety"
)

var FilterNames = []string{
	FilterUnderstandable,
	FilterMoat,
	FilterManagement,
	FilterMarginOfSafety,
}

// FilterVerdict value object: outcome of one filter check.
// MatchedKeywords is only populated by the moat filter.
type FilterVerdict struct {
	Status          Status   `json:"status"`
	Details         string   `json:"details,omitempty"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// Aggregate Root: Snapshot, the full result of scoring one thesis.
// Built once per analysis and never mutated afterwards.
type Snapshot struct {
	Filters         map[string]FilterVerdict `json:"filters"`
	InversionPrompt string                   `json:"inversion_prompt"`
	BiasRisks       []string                 `json:"bias_risks"`
	Posture         Posture                  `json:"posture"`
	RenderedReport  string                   `json:"rendered_report"`
}
