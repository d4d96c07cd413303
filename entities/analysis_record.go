package entities

import (
	"github.com/google/uuid"
)

// AnalysisRecord is one stored outcome of a skin-image analysis. Records are
// written once after a successful analysis call and never updated.
type AnalysisRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ResultSummary string    `json:"result_summary"`
	FullResult    string    `json:"full_result,omitempty" gorm:"type:text"` // raw per-attribute findings, JSON
	ImageURL      string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
