package adaptor

import (
	"net/http"

	"studio-reservations/internal/usecase"
	"studio-reservations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListReservations handles GET /api/admin/reservations?status=&search=
func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	reservations, err := h.service.ListReservations(r.Context(), status, search)
	if err != nil {
		writeServiceError(w, h.log, err, "list all reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// ConfirmReservation handles PUT /api/admin/reservations/{id}/confirm
func (h *AdminHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.ConfirmReservation(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "confirm reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation confirmed", nil)
}

// DeclineReservation handles PUT /api/admin/reservations/{id}/decline
func (h *AdminHandler) DeclineReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeclineReservation(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "decline reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation declined", nil)
}

// DeleteReservation handles DELETE /api/admin/reservations/{id}
func (h *AdminHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteReservation(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation deleted", nil)
}
