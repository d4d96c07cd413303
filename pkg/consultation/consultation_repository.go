package consultation

import (
	"context"

	"DermaGlow-Backend/entities"

	"gorm.io/gorm"
)

type (
	ConsultationRepository interface {
		GetDoctors(ctx context.Context) ([]*entities.Doctor, error)
		GetDoctorByID(ctx context.Context, id string) (*entities.Doctor, error)
		CreateBooking(ctx context.Context, booking *entities.ConsultationBooking) error
		GetBookingsByUser(ctx context.Context, userID string) ([]*entities.ConsultationBooking, error)
	}

	consultationRepository struct {
		db *gorm.DB
	}
)

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) GetDoctors(ctx context.Context) ([]*entities.Doctor, error) {
	var doctors []*entities.Doctor
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rating desc").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *consultationRepository) GetDoctorByID(ctx context.Context, id string) (*entities.Doctor, error) {
	var doctor entities.Doctor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *consultationRepository) CreateBooking(ctx context.Context, booking *entities.ConsultationBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *consultationRepository) GetBookingsByUser(ctx context.Context, userID string) ([]*entities.ConsultationBooking, error) {
	var bookings []*entities.ConsultationBooking
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("scheduled_at desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
