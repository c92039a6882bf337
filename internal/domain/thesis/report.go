package thesis

import (
	"fmt"
	"strings"
)

// RenderReport builds the plain-text summary block. Filters appear in
// FilterNames order regardless of map iteration.
func RenderReport(filters map[string]FilterVerdict, invert string, biases []string, posture Posture) string {
	lines := make([]string, 0, len(FilterNames)+4)
	lines = append(lines, "Four-Filters Snapshot")
	for _, name := range FilterNames {
		verdict := filters[name]
		line := fmt.Sprintf("%s: %s", name, verdict.Status)
		if verdict.Details != "" {
			line += " — " + verdict.Details
		}
		lines = append(lines, line)
	}
	lines = append(lines, "Invert: "+invert)
	lines = append(lines, "Bias Risks: "+strings.Join(biases, ", "))
	lines = append(lines, fmt.Sprintf("Posture: %s", posture))
	return strings.Join(lines, "\n")
}
