package analysis

import (
	"fmt"
	"strings"

	"DermaGlow-Backend/domain"
)

// skinTypeLabels maps the analysis endpoint's skin-type code to its label.
var skinTypeLabels = map[int]string{
	0: "Normal",
	1: "Dry",
	2: "Oily",
	3: "Combination",
}

// summaryConditions fixes both the set of tracked attributes and the order
// their clauses appear in a summary, regardless of input key order.
var summaryConditions = []struct {
	Key   string
	Label string
	Get   func(*domain.RawResult) *domain.AttributeFinding
}{
	{"acne", "Acne", func(r *domain.RawResult) *domain.AttributeFinding { return r.Acne }},
	{"skin_spot", "Skin Spots", func(r *domain.RawResult) *domain.AttributeFinding { return r.SkinSpot }},
	{"blackhead", "Blackheads", func(r *domain.RawResult) *domain.AttributeFinding { return r.Blackhead }},
	{"mole", "Moles", func(r *domain.RawResult) *domain.AttributeFinding { return r.Mole }},
	{"dark_circle", "Dark Circles", func(r *domain.RawResult) *domain.AttributeFinding { return r.DarkCircle }},
}

// SkinTypeLabel resolves a skin-type code to its label. A missing or
// unrecognized code yields "Unknown".
func SkinTypeLabel(finding *domain.SkinTypeFinding) string {
	if finding == nil || finding.SkinType == nil {
		return "Unknown"
	}
	label, ok := skinTypeLabels[*finding.SkinType]
	if !ok {
		return "Unknown"
	}
	return label
}

// BuildSummary turns one raw analysis response into the human-readable
// summary stored alongside the record. It is pure and total: any shape of
// input, including a missing result object, produces a summary rather than
// an error.
func BuildSummary(raw domain.RawAnalysis) string {
	if raw.Result == nil {
		return "Analysis complete."
	}

	skinTypeName := SkinTypeLabel(raw.Result.SkinType)
	summaryParts := []string{fmt.Sprintf("Skin Type: %s", skinTypeName)}

	for _, condition := range summaryConditions {
		if finding := condition.Get(raw.Result); finding != nil && finding.Value == 1 {
			summaryParts = append(summaryParts, fmt.Sprintf("%s Detected", condition.Label))
		}
	}

	if len(summaryParts) == 1 {
		return fmt.Sprintf("Skin Type: %s. No other major conditions detected.", skinTypeName)
	}

	return strings.Join(summaryParts, ", ") + "."
}
