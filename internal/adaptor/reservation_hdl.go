package adaptor

import (
	"encoding/json"
	"net/http"

	"studio-reservations/internal/dto/request"
	"studio-reservations/internal/usecase"
	"studio-reservations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// Create handles POST /api/reservations (protected)
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation submitted", reservation)
}

// Quote handles POST /api/reservations/quote. No auth required: the
// booking form recomputes the price on every change before login.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	utils.ResponseSuccess(w, "success", h.service.Quote(&req))
}

// List handles GET /api/user/reservations (protected): the signed-in
// user's own reservations only.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID.String())
	if err != nil {
		writeServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// UploadPaymentProof handles POST /api/reservations/{id}/payment
// (protected, multipart). The request body is capped slightly above the
// screenshot limit so the size check in the service still sees the real
// file size for files just over the line.
func (h *ReservationHandler) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, usecase.MaxScreenshotBytes+1024*1024)
	if err := r.ParseMultipartForm(usecase.MaxScreenshotBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form or file too large", nil)
		return
	}

	file, header, err := r.FormFile("screenshot")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing screenshot file", nil)
		return
	}
	defer file.Close()

	result, err := h.service.UploadPaymentProof(r.Context(), userID.String(), reservationID, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, h.log, err, "upload payment proof")
		return
	}

	utils.ResponseSuccess(w, "Payment proof uploaded", result)
}
