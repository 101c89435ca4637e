package request

// CreateReservationRequest mirrors the booking form. Email may be left
// empty: the service falls back to the authenticated user's email.
// Duration stays free text; the first numeric token is read as hours.
type CreateReservationRequest struct {
	FullName      string  `json:"full_name" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Phone         string  `json:"phone" validate:"required"`
	ClassType     string  `json:"class_type" validate:"required,oneof='Dance Class' 'Private Class' Rental"`
	ClassStyle    *string `json:"class_style,omitempty"`
	ClassLevel    *string `json:"class_level,omitempty"`
	Participants  int     `json:"participants" validate:"omitempty,min=1"`
	RequestedDate string  `json:"requested_date" validate:"required"`
	RequestedTime string  `json:"requested_time" validate:"required"`
	Duration      string  `json:"duration" validate:"required"`
}
