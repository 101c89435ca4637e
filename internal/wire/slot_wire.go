package wire

import (
	"studio-reservations/internal/adaptor"
	"studio-reservations/internal/data/repository"
	"studio-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireSlot configures the published schedule routes. Only admins
// maintain or read the catalog through the API.
func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	admin := r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	)
	admin.Get("/api/admin/slots", slotHandler.List)
	admin.Post("/api/admin/slots", slotHandler.Create)
	admin.Delete("/api/admin/slots/{id}", slotHandler.Delete)
}
