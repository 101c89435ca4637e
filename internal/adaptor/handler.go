package adaptor

import (
	"errors"
	"net/http"

	"studio-reservations/internal/usecase"
	"studio-reservations/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Reservation *ReservationHandler
	Admin       *AdminHandler
	Slot        *SlotHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Admin:       NewAdminHandler(service.Admin, log),
		Slot:        NewSlotHandler(service.Slot, log),
	}
}

// writeServiceError maps the usecase failure taxonomy onto HTTP
// responses. The three user-facing families stay distinguishable:
// invalid input (400), slot gone (409), system failed (5xx).
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, "This time slot is already booked. Please choose a different time.")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrUpload):
		log.Error(operation+" upload failed", zap.Error(err))
		utils.ResponseBadGateway(w, "Could not store the file. Please retry the upload.")

	case errors.Is(err, usecase.ErrPersistence):
		log.Error(operation+" persistence failed", zap.Error(err))
		utils.ResponseInternalError(w, "The system could not complete the request. Please try again.")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
