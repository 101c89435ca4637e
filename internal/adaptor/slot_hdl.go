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

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// Create handles POST /api/admin/slots
func (h *SlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "Slot created", slot)
}

// List handles GET /api/admin/slots?kind=
func (h *SlotHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")

	slots, err := h.service.ListSlots(r.Context(), kind)
	if err != nil {
		writeServiceError(w, h.log, err, "list slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// Delete handles DELETE /api/admin/slots/{id}
func (h *SlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteSlot(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "delete slot")
		return
	}

	utils.ResponseSuccess(w, "Slot deleted", nil)
}
