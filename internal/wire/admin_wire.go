package wire

import (
	"studio-reservations/internal/adaptor"
	"studio-reservations/internal/data/repository"
	"studio-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures the review workflow routes. Everything here
// requires both a valid session AND the admin role.
func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	admin := r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	)
	admin.Get("/api/admin/dashboard", adminHandler.Dashboard)
	admin.Get("/api/admin/reservations", adminHandler.ListReservations)
	admin.Put("/api/admin/reservations/{id}/confirm", adminHandler.ConfirmReservation)
	admin.Put("/api/admin/reservations/{id}/decline", adminHandler.DeclineReservation)
	admin.Delete("/api/admin/reservations/{id}", adminHandler.DeleteReservation)
}
