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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, req *request.PasswordResetRequest) error
	ResetPassword(ctx context.Context, req *request.PasswordResetConfirmRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email not taken
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: check email: %v", ErrPersistence, err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: process password: %v", ErrPersistence, err)
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: create account: %v", ErrPersistence, err)
	}

	// 5. Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue without session
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: find user: %v", ErrPersistence, err)
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: account is deactivated", ErrValidation)
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: create session: %v", ErrPersistence, err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	// Role is part of the response so the front end can route admins to
	// the dashboard and customers to their reservations.
	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("%w: invalid token format", ErrValidation)
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("%w: logout: %v", ErrPersistence, err)
	}

	s.log.Info("User logged out")
	return nil
}

// RequestPasswordReset issues a single-use token for the account. The
// response is identical whether or not the email exists, so the
// endpoint cannot be used to probe registered addresses.
func (s *authService) RequestPasswordReset(ctx context.Context, req *request.PasswordResetRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("%w: find user: %v", ErrPersistence, err)
	}
	if user == nil {
		s.log.Warn("Password reset requested for unknown email", zap.String("email", req.Email))
		return nil
	}

	now := time.Now()
	reset := &entity.PasswordResetToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Email:     user.Email,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Reset.ExpiryMinutes) * time.Minute),
		IsUsed:    false,
	}

	if err := s.repo.ResetToken.Create(ctx, reset); err != nil {
		s.log.Error("Failed to save reset token", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("%w: generate reset token: %v", ErrPersistence, err)
	}

	// TODO: send the reset link over SMTP once the studio has a mail
	// account; until then the token is only logged for manual delivery.
	s.log.Info("Password reset token generated",
		zap.String("email", user.Email),
		zap.String("token", reset.Token.String()),
		zap.Time("expires_at", reset.ExpiresAt),
	)

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.PasswordResetConfirmRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	tokenUUID, err := uuid.Parse(req.Token)
	if err != nil {
		return fmt.Errorf("%w: invalid reset token", ErrValidation)
	}

	reset, err := s.repo.ResetToken.FindValidToken(ctx, tokenUUID)
	if err != nil {
		s.log.Error("Failed to find reset token", zap.Error(err))
		return fmt.Errorf("%w: find reset token: %v", ErrPersistence, err)
	}
	if reset == nil {
		return fmt.Errorf("%w: invalid or expired reset link, please request a new one", ErrValidation)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("%w: process password: %v", ErrPersistence, err)
	}

	if err := s.repo.User.UpdatePassword(ctx, reset.UserID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", reset.UserID.String()))
		return fmt.Errorf("%w: update password: %v", ErrPersistence, err)
	}

	if err := s.repo.ResetToken.MarkUsed(ctx, reset.ID); err != nil {
		s.log.Warn("Failed to mark reset token used", zap.Error(err), zap.String("token_id", reset.ID.String()))
	}

	s.log.Info("Password updated via reset token", zap.String("user_id", reset.UserID.String()))
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
