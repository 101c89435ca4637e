package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-reservations/internal/data/entity"
	"studio-reservations/internal/data/repository"
	"studio-reservations/internal/dto/request"
	"studio-reservations/internal/dto/response"
	"studio-reservations/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlotService manages the published schedule the admins maintain:
// dance classes, private class openings and rental windows.
type SlotService interface {
	CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	ListSlots(ctx context.Context, kind string) ([]*response.SlotResponse, error)
	DeleteSlot(ctx context.Context, id string) error
}

type slotService struct {
	slots repository.ClassSlotRepository
	log   *zap.Logger
}

func NewSlotService(slots repository.ClassSlotRepository, log *zap.Logger) SlotService {
	return &slotService{
		slots: slots,
		log:   log.With(zap.String("service", "slot")),
	}
}

func (s *slotService) CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create slot validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	kind := entity.SlotKind(req.Kind)

	// Class kinds carry style and level; rentals do not.
	if kind != entity.SlotKindRental {
		if req.Style == nil || *req.Style == "" {
			return nil, fmt.Errorf("%w: style is required for class slots", ErrValidation)
		}
		if req.Level == nil || *req.Level == "" {
			return nil, fmt.Errorf("%w: level is required for class slots", ErrValidation)
		}
	}

	classDate, err := time.Parse("2006-01-02", req.ClassDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid class date %q", ErrValidation, req.ClassDate)
	}

	slot := &entity.ClassSlot{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Kind:      kind,
		ClassDate: classDate,
		Style:     req.Style,
		Level:     req.Level,
		Duration:  req.Duration,
		Price:     req.Price,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("%w: create slot: %v", ErrPersistence, err)
	}

	s.log.Info("Class slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("kind", req.Kind),
	)

	return response.SlotToResponse(slot), nil
}

func (s *slotService) ListSlots(ctx context.Context, kind string) ([]*response.SlotResponse, error) {
	switch entity.SlotKind(kind) {
	case entity.SlotKindDance, entity.SlotKindPrivate, entity.SlotKindRental:
	default:
		return nil, fmt.Errorf("%w: unknown slot kind %q", ErrValidation, kind)
	}

	slots, err := s.slots.FindByKind(ctx, entity.SlotKind(kind))
	if err != nil {
		return nil, fmt.Errorf("%w: list slots: %v", ErrPersistence, err)
	}

	return response.SlotsToResponse(slots), nil
}

func (s *slotService) DeleteSlot(ctx context.Context, id string) error {
	slotUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid slot ID %s", ErrValidation, id)
	}

	if err := s.slots.Delete(ctx, slotUUID); err != nil {
		return fmt.Errorf("%w: delete slot: %v", ErrPersistence, err)
	}

	return nil
}
