package entity

import "time"

type SlotKind string

const (
	SlotKindDance   SlotKind = "dance"
	SlotKindPrivate SlotKind = "private"
	SlotKindRental  SlotKind = "rental"
)

// ClassSlot is an admin-published schedule entry: a dance class, a
// private class opening, or a rental window users can browse before
// submitting a reservation. Style and Level apply to classes only.
type ClassSlot struct {
	BaseSimple
	Kind      SlotKind  `db:"kind"`
	ClassDate time.Time `db:"class_date"`
	Style     *string   `db:"style"`
	Level     *string   `db:"level"`
	Duration  string    `db:"duration"`
	Price     float64   `db:"price"`
}
