package repository

import (
	"context"
	"fmt"
	"time"

	"studio-reservations/internal/data/entity"
	"studio-reservations/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindBlockingByDate(ctx context.Context, date time.Time) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
	UpdatePaymentProof(ctx context.Context, id uuid.UUID, screenshotURL string, status entity.PaymentStatus) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, user_id, full_name, email, phone, class_type, class_style,
	       class_level, participants, requested_date, requested_time, duration,
	       estimated_price, payment_amount, payment_status, payment_screenshot_url,
	       reservation_status, created_at, updated_at`

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, user_id, full_name, email, phone, class_type,
		                          class_style, class_level, participants, requested_date,
		                          requested_time, duration, estimated_price, payment_amount,
		                          payment_status, payment_screenshot_url, reservation_status,
		                          created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.UserID,
		reservation.FullName,
		reservation.Email,
		reservation.Phone,
		reservation.ClassType,
		reservation.ClassStyle,
		reservation.ClassLevel,
		reservation.Participants,
		reservation.RequestedDate,
		reservation.RequestedTime,
		reservation.Duration,
		reservation.EstimatedPrice,
		reservation.PaymentAmount,
		reservation.PaymentStatus,
		reservation.PaymentScreenshotURL,
		reservation.ReservationStatus,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
			zap.String("class_type", string(reservation.ClassType)),
		)
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// FindAll returns the whole table ordered by requested date; the admin
// dashboard filters and aggregates this snapshot in memory.
func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		ORDER BY requested_date ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// FindBlockingByDate returns the reservations on a calendar date that
// block new bookings: confirmed ones and pending ones whose deposit has
// already been received. Declined reservations free their slot even if
// a deposit arrived before the decline. This is the conflict checker's
// comparison set.
func (r *reservationRepository) FindBlockingByDate(ctx context.Context, date time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE requested_date = $1
		  AND (reservation_status = $2 OR (payment_status = $3 AND reservation_status <> $4))
	`

	rows, err := r.db.Query(ctx, query, date,
		entity.ReservationStatusConfirmed, entity.PaymentStatusReceived, entity.ReservationStatusDeclined)
	if err != nil {
		r.log.Error("Failed to find blocking reservations",
			zap.Error(err),
			zap.Time("requested_date", date),
		)
		return nil, fmt.Errorf("find blocking reservations for %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET reservation_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func (r *reservationRepository) UpdatePaymentProof(ctx context.Context, id uuid.UUID, screenshotURL string, status entity.PaymentStatus) error {
	query := `
		UPDATE reservations
		SET payment_screenshot_url = $2, payment_status = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, screenshotURL, status)
	if err != nil {
		r.log.Error("Failed to update payment proof",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("update payment proof for reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.FullName,
		&reservation.Email,
		&reservation.Phone,
		&reservation.ClassType,
		&reservation.ClassStyle,
		&reservation.ClassLevel,
		&reservation.Participants,
		&reservation.RequestedDate,
		&reservation.RequestedTime,
		&reservation.Duration,
		&reservation.EstimatedPrice,
		&reservation.PaymentAmount,
		&reservation.PaymentStatus,
		&reservation.PaymentScreenshotURL,
		&reservation.ReservationStatus,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func collectReservations(rows pgx.Rows) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}
