package analysis

import (
	"testing"

	"DermaGlow-Backend/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestSkinTypeLabel(t *testing.T) {
	tests := []struct {
		name     string
		finding  *domain.SkinTypeFinding
		expected string
	}{
		{"normal", &domain.SkinTypeFinding{SkinType: intPtr(0)}, "Normal"},
		{"dry", &domain.SkinTypeFinding{SkinType: intPtr(1)}, "Dry"},
		{"oily", &domain.SkinTypeFinding{SkinType: intPtr(2)}, "Oily"},
		{"combination", &domain.SkinTypeFinding{SkinType: intPtr(3)}, "Combination"},
		{"unrecognized code", &domain.SkinTypeFinding{SkinType: intPtr(7)}, "Unknown"},
		{"negative code", &domain.SkinTypeFinding{SkinType: intPtr(-1)}, "Unknown"},
		{"missing code", &domain.SkinTypeFinding{}, "Unknown"},
		{"missing finding", nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkinTypeLabel(tt.finding))
		})
	}
}

func TestBuildSummaryNoDetections(t *testing.T) {
	raw := domain.RawAnalysis{
		Result: &domain.RawResult{
			SkinType: &domain.SkinTypeFinding{SkinType: intPtr(0)},
			Acne:     &domain.AttributeFinding{Value: 0, Confidence: 0.95},
			Mole:     &domain.AttributeFinding{Value: 0, Confidence: 0.5},
		},
	}

	assert.Equal(t, "Skin Type: Normal. No other major conditions detected.", BuildSummary(raw))
}

func TestBuildSummaryWithDetections(t *testing.T) {
	raw := domain.RawAnalysis{
		Result: &domain.RawResult{
			SkinType:  &domain.SkinTypeFinding{SkinType: intPtr(2)},
			Acne:      &domain.AttributeFinding{Value: 1, Confidence: 0.91},
			Blackhead: &domain.AttributeFinding{Value: 1, Confidence: 0.63},
			Mole:      &domain.AttributeFinding{Value: 0, Confidence: 0.88},
		},
	}

	assert.Equal(t, "Skin Type: Oily, Acne Detected, Blackheads Detected.", BuildSummary(raw))
}

func TestBuildSummaryClauseOrderIsFixed(t *testing.T) {
	// Clause order must not depend on which attributes are present.
	raw := domain.RawAnalysis{
		Result: &domain.RawResult{
			SkinType:   &domain.SkinTypeFinding{SkinType: intPtr(1)},
			DarkCircle: &domain.AttributeFinding{Value: 1, Confidence: 0.7},
			Mole:       &domain.AttributeFinding{Value: 1, Confidence: 0.6},
			Blackhead:  &domain.AttributeFinding{Value: 1, Confidence: 0.5},
			SkinSpot:   &domain.AttributeFinding{Value: 1, Confidence: 0.4},
			Acne:       &domain.AttributeFinding{Value: 1, Confidence: 0.3},
		},
	}

	assert.Equal(t,
		"Skin Type: Dry, Acne Detected, Skin Spots Detected, Blackheads Detected, Moles Detected, Dark Circles Detected.",
		BuildSummary(raw),
	)
}

func TestBuildSummaryUnknownSkinType(t *testing.T) {
	raw := domain.RawAnalysis{
		Result: &domain.RawResult{
			Acne: &domain.AttributeFinding{Value: 1, Confidence: 0.8},
		},
	}

	assert.Equal(t, "Skin Type: Unknown, Acne Detected.", BuildSummary(raw))
}

func TestBuildSummaryMissingResult(t *testing.T) {
	assert.Equal(t, "Analysis complete.", BuildSummary(domain.RawAnalysis{}))
}

func TestBuildSummaryEmptyResult(t *testing.T) {
	raw := domain.RawAnalysis{Result: &domain.RawResult{}}

	assert.Equal(t, "Skin Type: Unknown. No other major conditions detected.", BuildSummary(raw))
}

func TestBuildSummaryConfidenceDoesNotAffectDetection(t *testing.T) {
	// Detection is driven by value alone; a low-confidence value of 1 still
	// counts, a high-confidence value of 0 never does.
	raw := domain.RawAnalysis{
		Result: &domain.RawResult{
			SkinType: &domain.SkinTypeFinding{SkinType: intPtr(3)},
			Acne:     &domain.AttributeFinding{Value: 1, Confidence: 0.01},
			SkinSpot: &domain.AttributeFinding{Value: 0, Confidence: 0.99},
		},
	}

	assert.Equal(t, "Skin Type: Combination, Acne Detected.", BuildSummary(raw))
}
