package repository

import (
	"studio-reservations/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	ResetToken  ResetTokenRepository
	Reservation ReservationRepository
	ClassSlot   ClassSlotRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		ResetToken:  NewResetTokenRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		ClassSlot:   NewClassSlotRepository(db, log),
	}
}
