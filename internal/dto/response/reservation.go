package response

import (
	"time"

	"studio-reservations/internal/data/entity"
)

type ReservationResponse struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	ClassType            string    `json:"class_type"`
	ClassStyle           *string   `json:"class_style,omitempty"`
	ClassLevel           *string   `json:"class_level,omitempty"`
	Participants         int       `json:"participants"`
	RequestedDate        string    `json:"requested_date"`
	RequestedTime        string    `json:"requested_time"`
	Duration             string    `json:"duration"`
	EstimatedPrice       float64   `json:"estimated_price"`
	PaymentAmount        float64   `json:"payment_amount"`
	PaymentStatus        string    `json:"payment_status"`
	PaymentScreenshotURL *string   `json:"payment_screenshot_url,omitempty"`
	ReservationStatus    string    `json:"reservation_status"`
	CreatedAt            time.Time `json:"created_at"`
}

// PriceQuoteResponse is what the form shows while the user is still
// typing: price and deposit recomputed on every input change.
type PriceQuoteResponse struct {
	EstimatedPrice float64 `json:"estimated_price"`
	PaymentAmount  float64 `json:"payment_amount"`
}

type UploadResponse struct {
	ReservationID        string `json:"reservation_id"`
	PaymentScreenshotURL string `json:"payment_screenshot_url"`
	PaymentStatus        string `json:"payment_status"`
}

func ReservationToResponse(r *entity.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                   r.ID.String(),
		FullName:             r.FullName,
		Email:                r.Email,
		Phone:                r.Phone,
		ClassType:            string(r.ClassType),
		ClassStyle:           r.ClassStyle,
		ClassLevel:           r.ClassLevel,
		Participants:         r.Participants,
		RequestedDate:        r.RequestedDate.Format("2006-01-02"),
		RequestedTime:        r.RequestedTime,
		Duration:             r.Duration,
		EstimatedPrice:       r.EstimatedPrice,
		PaymentAmount:        r.PaymentAmount,
		PaymentStatus:        string(r.PaymentStatus),
		PaymentScreenshotURL: r.PaymentScreenshotURL,
		ReservationStatus:    string(r.ReservationStatus),
		CreatedAt:            r.CreatedAt,
	}
}

func ReservationsToResponse(reservations []*entity.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		result[i] = ReservationToResponse(r)
	}
	return result
}
