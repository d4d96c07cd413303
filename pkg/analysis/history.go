package analysis

import (
	"encoding/json"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"
)

// Minimum number of records before the progress chart is rendered.
const chartMinRecords = 2

const (
	chartDateFormat = "Jan 2, 2006"
	tableDateFormat = "Jan 2, 2006, 03:04 PM"
)

// trackedConditions fixes the attributes charted over time and their series
// order. Legend order differs from the summary clause order on purpose; both
// are kept as-is.
var trackedConditions = []struct {
	Key   string
	Label string
	Get   func(*domain.RawResult) *domain.AttributeFinding
}{
	{"acne", "Acne", func(r *domain.RawResult) *domain.AttributeFinding { return r.Acne }},
	{"skin_spot", "Skin Spots", func(r *domain.RawResult) *domain.AttributeFinding { return r.SkinSpot }},
	{"blackhead", "Blackheads", func(r *domain.RawResult) *domain.AttributeFinding { return r.Blackhead }},
	{"dark_circle", "Dark Circles", func(r *domain.RawResult) *domain.AttributeFinding { return r.DarkCircle }},
	{"mole", "Moles", func(r *domain.RawResult) *domain.AttributeFinding { return r.Mole }},
}

// BuildHistory turns the persisted records (newest first, as the repository
// returns them) into the history view: per-attribute time series in
// chronological order for the chart, plus newest-first rows for the table.
//
// A record that lacks a tracked attribute contributes a zero-confidence
// point, not a gap. A genuinely missing measurement is therefore
// indistinguishable from a confirmed zero; kept for compatibility with the
// stored history.
func BuildHistory(records []*entities.AnalysisRecord) domain.AnalysisHistoryResponse {
	response := domain.AnalysisHistoryResponse{
		Records: make([]domain.AnalysisRecordResponse, 0, len(records)),
	}

	for _, record := range records {
		response.Records = append(response.Records, domain.AnalysisRecordResponse{
			ID:        record.ID.String(),
			Summary:   record.ResultSummary,
			ImageURL:  record.ImageURL,
			CreatedAt: record.CreatedAt.Format(tableDateFormat),
		})
	}

	if len(records) < chartMinRecords {
		response.ChartAvailable = false
		response.ChartMessage = "Perform at least two analyses to see your progress over time."
		return response
	}

	// Oldest to newest, left to right.
	chronological := make([]*entities.AnalysisRecord, len(records))
	for i, record := range records {
		chronological[len(records)-1-i] = record
	}

	results := make([]*domain.RawResult, len(chronological))
	for i, record := range chronological {
		results[i] = decodeStoredResult(record.FullResult)
	}

	response.ChartAvailable = true
	response.Series = make([]domain.AttributeSeries, 0, len(trackedConditions))
	for _, condition := range trackedConditions {
		series := domain.AttributeSeries{
			Key:    condition.Key,
			Label:  condition.Label,
			Points: make([]domain.SeriesPoint, 0, len(chronological)),
		}
		for i, record := range chronological {
			point := domain.SeriesPoint{X: record.CreatedAt.Format(chartDateFormat)}
			if results[i] != nil {
				if finding := condition.Get(results[i]); finding != nil {
					point.Y = finding.Confidence * 100
				}
			}
			series.Points = append(series.Points, point)
		}
		response.Series = append(response.Series, series)
	}

	return response
}

func decodeStoredResult(stored string) *domain.RawResult {
	if stored == "" {
		return nil
	}
	var result domain.RawResult
	if err := json.Unmarshal([]byte(stored), &result); err != nil {
		return nil
	}
	return &result
}
