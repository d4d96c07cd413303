package consultation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"
	"DermaGlow-Backend/internal/utils/mailing"
	"DermaGlow-Backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ConsultationService interface {
		GetDoctors(ctx context.Context) ([]domain.DoctorResponse, error)
		BookConsultation(ctx context.Context, req domain.BookConsultationRequest, userID string) (domain.ConsultationBookingResponse, error)
		GetBookings(ctx context.Context, userID string) ([]domain.ConsultationBookingResponse, error)
	}

	consultationService struct {
		consultationRepository ConsultationRepository
		userRepository         user.UserRepository
	}
)

func NewConsultationService(consultationRepository ConsultationRepository, userRepository user.UserRepository) ConsultationService {
	return &consultationService{
		consultationRepository: consultationRepository,
		userRepository:         userRepository,
	}
}

func (s *consultationService) GetDoctors(ctx context.Context) ([]domain.DoctorResponse, error) {
	doctors, err := s.consultationRepository.GetDoctors(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		response = append(response, toDoctorResponse(doctor))
	}

	return response, nil
}

func (s *consultationService) BookConsultation(ctx context.Context, req domain.BookConsultationRequest, userID string) (domain.ConsultationBookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConsultationBookingResponse{}, domain.ErrParseUUID
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return domain.ConsultationBookingResponse{}, domain.ErrInvalidSchedule
	}

	if scheduledAt.Before(time.Now()) {
		return domain.ConsultationBookingResponse{}, domain.ErrScheduleInThePast
	}

	doctor, err := s.consultationRepository.GetDoctorByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConsultationBookingResponse{}, domain.ErrDoctorNotFound
		}
		return domain.ConsultationBookingResponse{}, err
	}

	booking := &entities.ConsultationBooking{
		ID:          uuid.New(),
		UserID:      userUUID,
		DoctorID:    doctor.ID,
		ScheduledAt: scheduledAt,
		Type:        req.Type,
		Message:     req.Message,
		Status:      "confirmed",
	}

	if err := s.consultationRepository.CreateBooking(ctx, booking); err != nil {
		return domain.ConsultationBookingResponse{}, err
	}

	// Confirmation mail is best effort, the booking stands without it.
	if account, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your %s consultation with %s is confirmed for %s.</p>",
			account.Name, booking.Type, doctor.Name, scheduledAt.Format("Jan 2, 2006, 03:04 PM"),
		)
		if err := mailing.SendMail(account.Email, "Consultation confirmed", body); err != nil {
			log.Errorf("error sending consultation confirmation mail: %v", err)
		}
	}

	return domain.ConsultationBookingResponse{
		ID:          booking.ID.String(),
		Doctor:      toDoctorResponse(doctor),
		ScheduledAt: booking.ScheduledAt,
		Type:        booking.Type,
		Message:     booking.Message,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}, nil
}

func (s *consultationService) GetBookings(ctx context.Context, userID string) ([]domain.ConsultationBookingResponse, error) {
	bookings, err := s.consultationRepository.GetBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ConsultationBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		item := domain.ConsultationBookingResponse{
			ID:          booking.ID.String(),
			ScheduledAt: booking.ScheduledAt,
			Type:        booking.Type,
			Message:     booking.Message,
			Status:      booking.Status,
			CreatedAt:   booking.CreatedAt,
		}
		if booking.Doctor != nil {
			item.Doctor = toDoctorResponse(booking.Doctor)
		}
		response = append(response, item)
	}

	return response, nil
}

func toDoctorResponse(doctor *entities.Doctor) domain.DoctorResponse {
	return domain.DoctorResponse{
		ID:         doctor.ID.String(),
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Experience: doctor.Experience,
		Rating:     doctor.Rating,
		Price:      doctor.Price,
	}
}
