package repository

import (
	"context"
	"fmt"

	"studio-reservations/internal/data/entity"
	"studio-reservations/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	FindValidToken(ctx context.Context, token uuid.UUID) (*entity.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type resetTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetTokenRepository(db database.PgxIface, log *zap.Logger) ResetTokenRepository {
	return &resetTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_token")),
	}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, email, token, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Email,
		token.Token,
		token.ExpiresAt,
		token.IsUsed,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reset token",
			zap.Error(err),
			zap.String("email", token.Email),
		)
		return fmt.Errorf("create reset token: %w", err)
	}

	return nil
}

func (r *resetTokenRepository) FindValidToken(ctx context.Context, token uuid.UUID) (*entity.PasswordResetToken, error) {
	query := `
		SELECT id, user_id, email, token, expires_at, is_used, created_at
		FROM password_reset_tokens
		WHERE token = $1
		  AND is_used = FALSE
		  AND expires_at > NOW()
	`

	var reset entity.PasswordResetToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&reset.ID,
		&reset.UserID,
		&reset.Email,
		&reset.Token,
		&reset.ExpiresAt,
		&reset.IsUsed,
		&reset.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reset token", zap.Error(err))
		return nil, fmt.Errorf("find valid reset token: %w", err)
	}

	return &reset, nil
}

func (r *resetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE password_reset_tokens SET is_used = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark reset token used",
			zap.Error(err),
			zap.String("token_id", id.String()),
		)
		return fmt.Errorf("mark reset token %s used: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reset token %s not found", id.String())
	}

	return nil
}
