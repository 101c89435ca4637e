package repository

import (
	"context"
	"fmt"

	"studio-reservations/internal/data/entity"
	"studio-reservations/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClassSlotRepository interface {
	Create(ctx context.Context, slot *entity.ClassSlot) error
	FindByKind(ctx context.Context, kind entity.SlotKind) ([]*entity.ClassSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type classSlotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassSlotRepository(db database.PgxIface, log *zap.Logger) ClassSlotRepository {
	return &classSlotRepository{
		db:  db,
		log: log.With(zap.String("repository", "class_slot")),
	}
}

func (r *classSlotRepository) Create(ctx context.Context, slot *entity.ClassSlot) error {
	query := `
		INSERT INTO class_slots (id, kind, class_date, style, level, duration, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.Kind,
		slot.ClassDate,
		slot.Style,
		slot.Level,
		slot.Duration,
		slot.Price,
		slot.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class slot",
			zap.Error(err),
			zap.String("kind", string(slot.Kind)),
		)
		return fmt.Errorf("create class slot: %w", err)
	}

	return nil
}

// FindByKind lists a kind's schedule newest-first, matching the admin
// schedule page ordering.
func (r *classSlotRepository) FindByKind(ctx context.Context, kind entity.SlotKind) ([]*entity.ClassSlot, error) {
	query := `
		SELECT id, kind, class_date, style, level, duration, price, created_at
		FROM class_slots
		WHERE kind = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		r.log.Error("Failed to find class slots",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return nil, fmt.Errorf("find class slots by kind %s: %w", string(kind), err)
	}
	defer rows.Close()

	var slots []*entity.ClassSlot
	for rows.Next() {
		var slot entity.ClassSlot
		err := rows.Scan(
			&slot.ID,
			&slot.Kind,
			&slot.ClassDate,
			&slot.Style,
			&slot.Level,
			&slot.Duration,
			&slot.Price,
			&slot.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan class slot row", zap.Error(err))
			return nil, fmt.Errorf("scan class slot row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

func (r *classSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM class_slots WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete class slot",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return fmt.Errorf("delete class slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class slot %s not found", id.String())
	}

	return nil
}
