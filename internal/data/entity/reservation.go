package entity

import (
	"time"

	"github.com/google/uuid"

	"studio-reservations/internal/pricing"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusDeclined  ReservationStatus = "Declined"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending Payment"
	PaymentStatusReceived PaymentStatus = "Payment Received"
)

// Reservation is a request to book a class or a studio rental slot.
// RequestedDate carries only the calendar date; RequestedTime is the
// "HH:MM" time of day. Duration stays free text ("2 hours", "1.5 hrs")
// exactly as the user typed it and is re-parsed wherever hours are needed.
type Reservation struct {
	Base
	UserID        uuid.UUID         `db:"user_id"`
	FullName      string            `db:"full_name"`
	Email         string            `db:"email"`
	Phone         string            `db:"phone"`
	ClassType     pricing.ClassType `db:"class_type"`
	ClassStyle    *string           `db:"class_style"`
	ClassLevel    *string           `db:"class_level"`
	Participants  int               `db:"participants"`
	RequestedDate time.Time         `db:"requested_date"`
	RequestedTime string            `db:"requested_time"`
	Duration      string            `db:"duration"`

	EstimatedPrice float64 `db:"estimated_price"`
	// PaymentAmount is the 70% deposit derived from EstimatedPrice.
	PaymentAmount float64 `db:"payment_amount"`

	PaymentStatus        PaymentStatus     `db:"payment_status"`
	PaymentScreenshotURL *string           `db:"payment_screenshot_url"`
	ReservationStatus    ReservationStatus `db:"reservation_status"`
}
