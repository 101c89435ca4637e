package usecase

import (
	"context"
	"testing"

	"studio-reservations/internal/data/entity"
	"studio-reservations/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClassSlotRepo struct {
	created []*entity.ClassSlot
	byKind  map[entity.SlotKind][]*entity.ClassSlot
	deleted []uuid.UUID
}

func newStubClassSlotRepo() *stubClassSlotRepo {
	return &stubClassSlotRepo{byKind: make(map[entity.SlotKind][]*entity.ClassSlot)}
}

func (s *stubClassSlotRepo) Create(_ context.Context, slot *entity.ClassSlot) error {
	s.created = append(s.created, slot)
	s.byKind[slot.Kind] = append(s.byKind[slot.Kind], slot)
	return nil
}

func (s *stubClassSlotRepo) FindByKind(_ context.Context, kind entity.SlotKind) ([]*entity.ClassSlot, error) {
	return s.byKind[kind], nil
}

func (s *stubClassSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func strPtr(v string) *string { return &v }

func TestCreateSlot(t *testing.T) {
	slots := newStubClassSlotRepo()
	svc := &slotService{slots: slots, log: zap.NewNop()}

	got, err := svc.CreateSlot(context.Background(), &request.CreateSlotRequest{
		Kind:      "dance",
		ClassDate: "2026-09-10",
		Style:     strPtr("Hip Hop"),
		Level:     strPtr("Beginner"),
		Duration:  "1 hour",
		Price:     350,
	})
	require.NoError(t, err)
	require.Len(t, slots.created, 1)
	assert.Equal(t, "2026-09-10", got.ClassDate)
	assert.Equal(t, "dance", got.Kind)
}

func TestCreateSlotRequiresStyleAndLevelForClasses(t *testing.T) {
	svc := &slotService{slots: newStubClassSlotRepo(), log: zap.NewNop()}

	_, err := svc.CreateSlot(context.Background(), &request.CreateSlotRequest{
		Kind:      "private",
		ClassDate: "2026-09-10",
		Duration:  "1 hour",
		Price:     3999,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Rentals carry no style or level.
	_, err = svc.CreateSlot(context.Background(), &request.CreateSlotRequest{
		Kind:      "rental",
		ClassDate: "2026-09-10",
		Duration:  "2 hours",
		Price:     3000,
	})
	assert.NoError(t, err)
}

func TestListSlots(t *testing.T) {
	slots := newStubClassSlotRepo()
	svc := &slotService{slots: slots, log: zap.NewNop()}

	_, err := svc.CreateSlot(context.Background(), &request.CreateSlotRequest{
		Kind:      "rental",
		ClassDate: "2026-09-10",
		Duration:  "2 hours",
		Price:     3000,
	})
	require.NoError(t, err)

	got, err := svc.ListSlots(context.Background(), "rental")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListSlots(context.Background(), "weekend")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteSlot(t *testing.T) {
	slots := newStubClassSlotRepo()
	svc := &slotService{slots: slots, log: zap.NewNop()}

	id := uuid.New()
	require.NoError(t, svc.DeleteSlot(context.Background(), id.String()))
	assert.Equal(t, []uuid.UUID{id}, slots.deleted)

	assert.ErrorIs(t, svc.DeleteSlot(context.Background(), "nope"), ErrValidation)
}
