package analysis

import (
	"testing"
	"time"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAt(createdAt time.Time, fullResult string) *entities.AnalysisRecord {
	return &entities.AnalysisRecord{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ResultSummary: "Skin Type: Normal. No other major conditions detected.",
		FullResult:    fullResult,
		Timestamp:     entities.Timestamp{CreatedAt: createdAt},
	}
}

func TestBuildHistoryNoRecords(t *testing.T) {
	res := BuildHistory(nil)

	assert.False(t, res.ChartAvailable)
	assert.Equal(t, "Perform at least two analyses to see your progress over time.", res.ChartMessage)
	assert.Empty(t, res.Series)
	assert.Empty(t, res.Records)
}

func TestBuildHistorySingleRecord(t *testing.T) {
	created := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	res := BuildHistory([]*entities.AnalysisRecord{recordAt(created, "")})

	assert.False(t, res.ChartAvailable)
	assert.NotEmpty(t, res.ChartMessage)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Mar 14, 2026, 09:30 AM", res.Records[0].CreatedAt)
}

func TestBuildHistoryChart(t *testing.T) {
	// Records arrive newest first, the way the repository returns them.
	newest := recordAt(
		time.Date(2026, time.March, 20, 10, 0, 0, 0, time.UTC),
		`{"acne":{"value":1,"confidence":0.9},"dark_circle":{"value":1,"confidence":0.4}}`,
	)
	middle := recordAt(
		time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC),
		`{"acne":{"value":0,"confidence":0.25},"mole":{"value":1,"confidence":1}}`,
	)
	oldest := recordAt(
		time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
		`{"acne":{"value":1,"confidence":0.5}}`,
	)

	res := BuildHistory([]*entities.AnalysisRecord{newest, middle, oldest})

	assert.True(t, res.ChartAvailable)
	assert.Empty(t, res.ChartMessage)

	require.Len(t, res.Series, 5)
	assert.Equal(t, []string{"acne", "skin_spot", "blackhead", "dark_circle", "mole"}, seriesKeys(res.Series))
	assert.Equal(t, "Dark Circles", res.Series[3].Label)

	// Every series carries one point per record, oldest to newest.
	acne := res.Series[0]
	require.Len(t, acne.Points, 3)
	assert.Equal(t, "Mar 1, 2026", acne.Points[0].X)
	assert.Equal(t, "Mar 10, 2026", acne.Points[1].X)
	assert.Equal(t, "Mar 20, 2026", acne.Points[2].X)
	assert.InDelta(t, 50, acne.Points[0].Y, 0.0001)
	assert.InDelta(t, 25, acne.Points[1].Y, 0.0001)
	assert.InDelta(t, 90, acne.Points[2].Y, 0.0001)

	// An attribute absent from a record charts as zero, not as a gap.
	mole := res.Series[4]
	require.Len(t, mole.Points, 3)
	assert.Zero(t, mole.Points[0].Y)
	assert.InDelta(t, 100, mole.Points[1].Y, 0.0001)
	assert.Zero(t, mole.Points[2].Y)

	// Table rows stay newest first.
	require.Len(t, res.Records, 3)
	assert.Equal(t, newest.ID.String(), res.Records[0].ID)
	assert.Equal(t, oldest.ID.String(), res.Records[2].ID)
}

func TestBuildHistoryMalformedStoredResult(t *testing.T) {
	first := recordAt(time.Date(2026, time.April, 2, 8, 0, 0, 0, time.UTC), "not json")
	second := recordAt(time.Date(2026, time.April, 1, 8, 0, 0, 0, time.UTC), "")

	res := BuildHistory([]*entities.AnalysisRecord{first, second})

	assert.True(t, res.ChartAvailable)
	for _, series := range res.Series {
		require.Len(t, series.Points, 2)
		for _, point := range series.Points {
			assert.Zero(t, point.Y)
		}
	}
}

func seriesKeys(series []domain.AttributeSeries) []string {
	keys := make([]string, 0, len(series))
	for _, s := range series {
		keys = append(keys, s.Key)
	}
	return keys
}
