package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAnalyzeSkin  = "skin analysis completed successfully"
	MessageSuccessGetHistory   = "analysis history retrieved successfully"
	MessageSuccessGetDashboard = "dashboard retrieved successfully"

	MessageFailedAnalyzeSkin  = "failed to analyze skin image"
	MessageFailedGetHistory   = "failed to retrieve analysis history"
	MessageFailedGetDashboard = "failed to retrieve dashboard"

	// Surfaced as a soft warning: the analysis itself succeeded and its
	// result is still returned to the caller.
	MessageWarningSaveAnalysis = "analysis successful, but failed to save to history"

	ErrAnalysisNotConfigured = errors.New("analysis endpoint not configured")
	ErrAnalysisFailed        = errors.New("analysis failed due to a server error")
	ErrNoImageUploaded       = errors.New("no image file uploaded")
	ErrInvalidImageFormat    = errors.New("invalid image format")
)

type (
	// RawAnalysis mirrors the analysis endpoint's response body. Every field
	// is optional: a malformed or partial payload is normalized instead of
	// rejected.
	RawAnalysis struct {
		Result *RawResult `json:"result,omitempty"`
	}

	RawResult struct {
		SkinType   *SkinTypeFinding  `json:"skin_type,omitempty"`
		Acne       *AttributeFinding `json:"acne,omitempty"`
		DarkCircle *AttributeFinding `json:"dark_circle,omitempty"`
		SkinSpot   *AttributeFinding `json:"skin_spot,omitempty"`
		Mole       *AttributeFinding `json:"mole,omitempty"`
		Blackhead  *AttributeFinding `json:"blackhead,omitempty"`
	}

	SkinTypeFinding struct {
		SkinType *int `json:"skin_type,omitempty"`
	}

	AttributeFinding struct {
		Value      int     `json:"value"`
		Confidence float64 `json:"confidence"`
	}

	AnalyzeSkinRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	AnalyzeSkinResponse struct {
		ID       string     `json:"id,omitempty"`
		Summary  string     `json:"summary"`
		Result   *RawResult `json:"result,omitempty"`
		ImageURL string     `json:"image_url,omitempty"`
		Saved    bool       `json:"saved"`
		Warning  string     `json:"warning,omitempty"`
	}

	AnalysisRecordResponse struct {
		ID        string `json:"id"`
		Summary   string `json:"summary"`
		ImageURL  string `json:"image_url,omitempty"`
		CreatedAt string `json:"created_at"`
	}

	// SeriesPoint is one chart point: x is the formatted record date, y the
	// attribute confidence scaled to 0..100.
	SeriesPoint struct {
		X string  `json:"x"`
		Y float64 `json:"y"`
	}

	AttributeSeries struct {
		Key    string        `json:"key"`
		Label  string        `json:"label"`
		Points []SeriesPoint `json:"points"`
	}

	AnalysisHistoryResponse struct {
		ChartAvailable bool                     `json:"chart_available"`
		ChartMessage   string                   `json:"chart_message,omitempty"`
		Series         []AttributeSeries        `json:"series,omitempty"`
		Records        []AnalysisRecordResponse `json:"records"`
	}
)
