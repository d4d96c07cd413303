package entities

import (
	"github.com/google/uuid"
	"time"
)

type Doctor struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Experience string    `json:"experience"`
	Rating     float64   `json:"rating"`
	Price      string    `json:"price"`
	IsActive   bool      `json:"is_active"`

	Timestamp
}

type ConsultationBooking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Type        string    `json:"type"` // "video", "chat"
	Message     string    `json:"message,omitempty" gorm:"type:text"`
	Status      string    `json:"status"` // "confirmed", "cancelled"

	User   *User   `gorm:"foreignKey:UserID"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID"`
	Timestamp
}
