package wire

import (
	"studio-reservations/internal/adaptor"
	"studio-reservations/internal/data/repository"
	"studio-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReservation configures the customer-facing booking routes.
func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Price quote for the booking form, recomputed on every change
	r.Post("/api/reservations/quote", reservationHandler.Quote)

	// ==================== PROTECTED ROUTES ====================
	protected := r.With(middleware.AuthSession(repo.Session, log))
	protected.Post("/api/reservations", reservationHandler.Create)
	protected.Get("/api/user/reservations", reservationHandler.List)
	protected.Post("/api/reservations/{id}/payment", reservationHandler.UploadPaymentProof)
}
