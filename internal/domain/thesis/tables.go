package thesis

import "fmt"

// Static keyword tables. Initialized once, read-only afterwards.
// All tables are ordered slices, not maps: declaration order decides
// both match priority and display order.

type keywordLabel struct {
	Keyword string
	Label   string
}

var moatKeywords = []keywordLabel{
	{"network effect", "Network effects"},
	{"network effects", "Network effects"},
	{"switching cost", "Switching costs"},
	{"switching costs", "Switching costs"},
	{"brand", "Brand strength"},
	{"flywheel", "Flywheel"},
	{"scale", "Scale advantage"},
	{"cost advantage", "Cost advantage"},
	{"distribution", "Distribution reach"},
	{"regulation", "Regulatory license"},
}

var managementPositive = []keywordLabel{
	{"founder-led", "Founder-led"},
	{"founder led", "Founder-led"},
	{"owner-operator", "Owner-operator"},
	{"owner operator", "Owner-operator"},
	{"insider ownership", "Insider ownership"},
	{"insider-owned", "Insider ownership"},
	{"buyback", "Buybacks"},
	{"buybacks", "Buybacks"},
	{"roic", "High ROIC"},
	{"return on capital", "Returns on capital"},
	{"capital allocator", "Capital allocation"},
	{"capital allocation", "Capital allocation"},
	{"skin in the game", "Skin in the game"},
}

var managementRedFlags = []keywordLabel{
	{"restatement", "Accounting restatement"},
	{"probe", "Regulatory probe"},
	{"investigation", "Investigation"},
	{"fraud", "Fraud mention"},
	{"lawsuit", "Shareholder lawsuit"},
	{"sec", "SEC scrutiny"},
	{"resignation", "Leadership turnover"},
}

type biasCategory struct {
	Name     string
	Keywords []string
}

// biasRiskCount is configuration, not derived from the table size:
// the ranked list is always truncated to this many entries.
const biasRiskCount = 3

var biasCategories = []biasCategory{
	{
		Name: "Incentives",
		Keywords: []string{
			"bonus", "commission", "fees", "subsidy", "rebate", "kickback",
			"option", "equity comp", "stock grant", "performance pay",
			"founder-led", "founder led", "founder", "buyback", "buybacks",
			"yield", "fcf", "owner-operator", "owner operator",
			"insider ownership",
		},
	},
	{
		Name: "Social-Proof",
		Keywords: []string{
			"customers", "peers", "trend", "hype", "viral", "adoption",
			"reference", "case study", "industry standard", "partnership",
			"network effect", "network effects", "switching cost",
			"switching costs", "integrations", "integration", "community",
		},
	},
	{
		Name: "Commitment/Consistency",
		Keywords: []string{
			"long-term contract", "multi-year", "switching cost",
			"switching costs", "integrations", "installed base", "locked in",
			"legacy system", "prior investment",
		},
	},
	{
		Name: "Authority",
		Keywords: []string{
			"regulator", "regulators", "regulation", "mandate", "government",
			"board approval", "expert", "advisor", "consultant",
		},
	},
}

type inversionRule struct {
	Triggers []string
	Prompt   string
}

// Ordered by priority: the first matching rule wins.
var inversionRules = []inversionRule{
	{
		Triggers: []string{"network effect", "network effects"},
		Prompt:   "What breaks network effects? (regulatory fee caps, platform API changes, competitor subsidies).",
	},
	{
		Triggers: []string{"switching cost", "switching costs"},
		Prompt:   "What erodes switching costs? (migration tooling, interoperability mandates, bundled pricing).",
	},
	{
		Triggers: []string{"brand"},
		Prompt:   "Where does the brand lose trust? (quality lapses, pricing power pushback, reputational hits).",
	},
	{
		Triggers: []string{"cost advantage", "scale"},
		Prompt:   "Who undercuts the cost advantage? (input inflation, vertical integration, price wars).",
	},
	{
		Triggers: []string{"regulation", "license"},
		Prompt:   "How could regulation flip? (license removal, new entrants approved, compliance burdens).",
	},
}

const genericInversionPrompt = "What would have to be true for this to fail? Pressure-test customer churn, pricing power, and management behavior."

// ValidateTables reports whether every static table is populated.
// Used by the health check; a failure here means the binary is broken.
func ValidateTables() error {
	if len(moatKeywords) == 0 {
		return fmt.Errorf("moat keyword table is empty")
	}
	if len(managementPositive) == 0 || len(managementRedFlags) == 0 {
		return fmt.Errorf("management keyword tables are empty")
	}
	if len(biasCategories) < biasRiskCount {
		return fmt.Errorf("bias category table has %d entries, need at least %d", len(biasCategories), biasRiskCount)
	}
	if len(inversionRules) == 0 {
		return fmt.Errorf("inversion rule table is empty")
	}
	return nil
}
