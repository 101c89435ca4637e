package usecase

import (
	"studio-reservations/internal/data/repository"
	"studio-reservations/pkg/storage"
	"studio-reservations/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Reservation ReservationService
	Admin       AdminService
	Slot        SlotService
}

func NewService(repo *repository.Repository, files storage.FileStorage, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Reservation: NewReservationService(repo, files, log),
		Admin:       NewAdminService(repo, log),
		Slot:        NewSlotService(repo.ClassSlot, log),
	}
}
