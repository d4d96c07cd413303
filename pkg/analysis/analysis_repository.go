package analysis

import (
	"context"

	"DermaGlow-Backend/entities"

	"gorm.io/gorm"
)

type (
	AnalysisRepository interface {
		CreateAnalysisRecord(ctx context.Context, record *entities.AnalysisRecord) error
		GetAnalysesByUser(ctx context.Context, userID string) ([]*entities.AnalysisRecord, error)
		GetRecentAnalysesByUser(ctx context.Context, userID string, limit int) ([]*entities.AnalysisRecord, error)
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) CreateAnalysisRecord(ctx context.Context, record *entities.AnalysisRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetAnalysesByUser returns every record for the user, newest first. No
// pagination: the history view consumes the full series each time.
func (r *analysisRepository) GetAnalysesByUser(ctx context.Context, userID string) ([]*entities.AnalysisRecord, error) {
	var records []*entities.AnalysisRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *analysisRepository) GetRecentAnalysesByUser(ctx context.Context, userID string, limit int) ([]*entities.AnalysisRecord, error) {
	var records []*entities.AnalysisRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
