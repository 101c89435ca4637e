package response

import (
	"studio-reservations/internal/data/entity"
)

type SlotResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	ClassDate string  `json:"class_date"`
	Style     *string `json:"style,omitempty"`
	Level     *string `json:"level,omitempty"`
	Duration  string  `json:"duration"`
	Price     float64 `json:"price"`
}

func SlotToResponse(s *entity.ClassSlot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID.String(),
		Kind:      string(s.Kind),
		ClassDate: s.ClassDate.Format("2006-01-02"),
		Style:     s.Style,
		Level:     s.Level,
		Duration:  s.Duration,
		Price:     s.Price,
	}
}

func SlotsToResponse(slots []*entity.ClassSlot) []*SlotResponse {
	result := make([]*SlotResponse, len(slots))
	for i, s := range slots {
		result[i] = SlotToResponse(s)
	}
	return result
}
