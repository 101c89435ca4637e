package request

// CreateSlotRequest adds an entry to the published schedule. Style and
// level are required for class kinds only; price 0 is allowed (free
// community classes).
type CreateSlotRequest struct {
	Kind      string  `json:"kind" validate:"required,oneof=dance private rental"`
	ClassDate string  `json:"class_date" validate:"required"`
	Style     *string `json:"style,omitempty"`
	Level     *string `json:"level,omitempty"`
	Duration  string  `json:"duration" validate:"required"`
	Price     float64 `json:"price" validate:"min=0"`
}
