package consultation

import (
	"context"
	"testing"
	"time"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeConsultationRepository struct {
	doctors  map[string]*entities.Doctor
	bookings []*entities.ConsultationBooking
}

func newFakeConsultationRepository() *fakeConsultationRepository {
	return &fakeConsultationRepository{doctors: make(map[string]*entities.Doctor)}
}

func (f *fakeConsultationRepository) GetDoctors(ctx context.Context) ([]*entities.Doctor, error) {
	var doctors []*entities.Doctor
	for _, d := range f.doctors {
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (f *fakeConsultationRepository) GetDoctorByID(ctx context.Context, id string) (*entities.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeConsultationRepository) CreateBooking(ctx context.Context, booking *entities.ConsultationBooking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeConsultationRepository) GetBookingsByUser(ctx context.Context, userID string) ([]*entities.ConsultationBooking, error) {
	var bookings []*entities.ConsultationBooking
	for _, b := range f.bookings {
		if b.UserID.String() == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// No account lookup succeeds, so the confirmation mail path stays untouched.
type noUserRepository struct{}

func (noUserRepository) CreateUser(ctx context.Context, user *entities.User) error { return nil }
func (noUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (noUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (noUserRepository) UpdateUser(ctx context.Context, user *entities.User) error { return nil }

func seedDoctor(repo *fakeConsultationRepository) *entities.Doctor {
	d := &entities.Doctor{
		ID:         uuid.New(),
		Name:       "Prof. Dr. Ikram Ullah Khan",
		Specialty:  "Dermatology",
		Experience: "20+ years",
		Rating:     4.9,
		Price:      "PKR 15,000",
		IsActive:   true,
	}
	repo.doctors[d.ID.String()] = d
	return d
}

func TestBookConsultation(t *testing.T) {
	repo := newFakeConsultationRepository()
	doctor := seedDoctor(repo)
	service := NewConsultationService(repo, noUserRepository{})
	userID := uuid.NewString()

	scheduledAt := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	res, err := service.BookConsultation(context.Background(), domain.BookConsultationRequest{
		DoctorID:    doctor.ID.String(),
		ScheduledAt: scheduledAt,
		Type:        "video",
		Message:     "Recurring acne on the forehead.",
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)
	assert.Equal(t, "video", res.Type)
	assert.Equal(t, doctor.Name, res.Doctor.Name)

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, userID, repo.bookings[0].UserID.String())
}

func TestBookConsultationInvalidSchedule(t *testing.T) {
	repo := newFakeConsultationRepository()
	doctor := seedDoctor(repo)
	service := NewConsultationService(repo, noUserRepository{})

	_, err := service.BookConsultation(context.Background(), domain.BookConsultationRequest{
		DoctorID:    doctor.ID.String(),
		ScheduledAt: "tomorrow at noon",
		Type:        "chat",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	_, err = service.BookConsultation(context.Background(), domain.BookConsultationRequest{
		DoctorID:    doctor.ID.String(),
		ScheduledAt: past,
		Type:        "chat",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrScheduleInThePast)
}

func TestBookConsultationUnknownDoctor(t *testing.T) {
	service := NewConsultationService(newFakeConsultationRepository(), noUserRepository{})

	scheduledAt := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	_, err := service.BookConsultation(context.Background(), domain.BookConsultationRequest{
		DoctorID:    uuid.NewString(),
		ScheduledAt: scheduledAt,
		Type:        "video",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
}

func TestGetBookingsFiltersByUser(t *testing.T) {
	repo := newFakeConsultationRepository()
	doctor := seedDoctor(repo)
	service := NewConsultationService(repo, noUserRepository{})

	userID := uuid.NewString()
	scheduledAt := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	_, err := service.BookConsultation(context.Background(), domain.BookConsultationRequest{
		DoctorID:    doctor.ID.String(),
		ScheduledAt: scheduledAt,
		Type:        "chat",
	}, userID)
	require.NoError(t, err)

	_, err = service.BookConsultation(context.Background(), domain.BookConsultationRequest{
		DoctorID:    doctor.ID.String(),
		ScheduledAt: scheduledAt,
		Type:        "video",
	}, uuid.NewString())
	require.NoError(t, err)

	bookings, err := service.GetBookings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "chat", bookings[0].Type)
}
