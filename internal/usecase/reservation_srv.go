package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"studio-reservations/internal/data/entity"
	"studio-reservations/internal/data/repository"
	"studio-reservations/internal/dto/request"
	"studio-reservations/internal/dto/response"
	"studio-reservations/internal/pricing"
	"studio-reservations/internal/timeslot"
	"studio-reservations/pkg/storage"
	"studio-reservations/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxScreenshotBytes caps payment screenshot uploads at 5 MB. Checked
// before any storage call.
const MaxScreenshotBytes = 5 * 1024 * 1024

const screenshotPrefix = "payment-screenshots"

var allowedScreenshotExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type ReservationService interface {
	Create(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Quote(req *request.CreateReservationRequest) *response.PriceQuoteResponse
	GetUserReservations(ctx context.Context, userID string) ([]*response.ReservationResponse, error)
	UploadPaymentProof(ctx context.Context, userID, reservationID, filename string, size int64, file io.Reader) (*response.UploadResponse, error)
}

type reservationService struct {
	repo  *repository.Repository
	files storage.FileStorage
	log   *zap.Logger
	now   func() time.Time
}

func NewReservationService(repo *repository.Repository, files storage.FileStorage, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:  repo,
		files: files,
		log:   log.With(zap.String("service", "reservation")),
		now:   time.Now,
	}
}

// Create runs the submission workflow: validate inputs, reject past
// dates, check the requested slot against already-confirmed/paid
// reservations on the same date, compute the price, then persist. Any
// failure before the insert leaves no partial writes behind.
func (s *reservationService) Create(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// 1. Input validation
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	// Email may come from the form or fall back to the signed-in
	// account; at least one must be present.
	email := strings.TrimSpace(req.Email)
	if email == "" {
		user, err := s.repo.User.FindByID(ctx, userUUID)
		if err != nil {
			return nil, fmt.Errorf("%w: load account: %v", ErrPersistence, err)
		}
		if user != nil {
			email = user.Email
		}
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	// 2. Date validity: date-only comparison at midnight granularity,
	// today itself is allowed.
	requestedDate, err := time.Parse("2006-01-02", req.RequestedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid requested date %q", ErrValidation, req.RequestedDate)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if requestedDate.Before(today) {
		return nil, fmt.Errorf("%w: requested date must not be in the past", ErrValidation)
	}

	classType := pricing.ClassType(req.ClassType)
	durationHours := pricing.ParseHours(req.Duration)

	candidate, err := timeslot.NewInterval(req.RequestedTime, durationHours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// 3. Conflict check against confirmed/paid reservations on the same
	// date. The fetch and the insert below are not atomic: two
	// submissions racing for the same slot can both pass. Accepted
	// limitation; closing it needs an exclusion constraint in the store.
	blocking, err := s.repo.Reservation.FindBlockingByDate(ctx, requestedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check existing reservations: %v", ErrPersistence, err)
	}

	existing := make([]timeslot.Interval, 0, len(blocking))
	for _, b := range blocking {
		// A declined reservation frees its slot even when a deposit
		// arrived before the decline.
		if b.ReservationStatus == entity.ReservationStatusDeclined {
			continue
		}

		iv, err := timeslot.NewInterval(b.RequestedTime, pricing.ParseHours(b.Duration))
		if err != nil {
			// Unparseable stored time cannot be compared; skip it
			// rather than block every booking on that date.
			s.log.Warn("Skipping reservation with invalid time",
				zap.String("reservation_id", b.ID.String()),
				zap.String("requested_time", b.RequestedTime))
			continue
		}
		existing = append(existing, iv)
	}

	if timeslot.HasConflict(candidate, existing) {
		return nil, fmt.Errorf("%w: %s at %s", ErrConflict, req.RequestedDate, req.RequestedTime)
	}

	// 4. Price computation
	participants := pricing.EffectiveParticipants(classType, req.Participants)
	estimatedPrice, depositAmount := pricing.Estimate(classType, participants, req.Duration)

	// 5. Persistence
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            userUUID,
		FullName:          req.FullName,
		Email:             email,
		Phone:             req.Phone,
		ClassType:         classType,
		ClassStyle:        req.ClassStyle,
		ClassLevel:        req.ClassLevel,
		Participants:      participants,
		RequestedDate:     requestedDate,
		RequestedTime:     req.RequestedTime,
		Duration:          req.Duration,
		EstimatedPrice:    estimatedPrice,
		PaymentAmount:     depositAmount,
		PaymentStatus:     entity.PaymentStatusPending,
		ReservationStatus: entity.ReservationStatusPending,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to persist reservation",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("%w: could not save reservation, please try again: %v", ErrPersistence, err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", userID),
		zap.String("class_type", string(classType)),
		zap.Float64("estimated_price", estimatedPrice),
		zap.Float64("payment_amount", depositAmount),
	)

	return response.ReservationToResponse(reservation), nil
}

// Quote recomputes price and deposit for the current form inputs. Pure
// passthrough to the pricing engine; safe to call on every change event.
func (s *reservationService) Quote(req *request.CreateReservationRequest) *response.PriceQuoteResponse {
	price, deposit := pricing.Estimate(pricing.ClassType(req.ClassType), req.Participants, req.Duration)
	return &response.PriceQuoteResponse{
		EstimatedPrice: price,
		PaymentAmount:  utils.Round2(deposit),
	}
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string) ([]*response.ReservationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservations: %v", ErrPersistence, err)
	}

	return response.ReservationsToResponse(reservations), nil
}

// UploadPaymentProof stores one screenshot for a reservation and marks
// the deposit as received. The file is keyed by the reservation ID plus
// the original extension, so a re-upload overwrites the previous proof.
// A storage failure and a metadata-update failure are reported as
// different errors: the first means retry the upload, the second means
// the file is stored but the reservation row still says pending.
func (s *reservationService) UploadPaymentProof(ctx context.Context, userID, reservationID, filename string, size int64, file io.Reader) (*response.UploadResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	resUUID, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrValidation, reservationID)
	}

	// Size and type limits apply before anything touches storage.
	if size > MaxScreenshotBytes {
		return nil, fmt.Errorf("%w: screenshot exceeds the 5 MB limit", ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedScreenshotExts[ext] {
		return nil, fmt.Errorf("%w: screenshot must be an image (jpg, jpeg, png, gif)", ErrValidation)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, resUUID)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservation: %v", ErrPersistence, err)
	}
	if reservation == nil || reservation.UserID != userUUID {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, reservationID)
	}

	path := fmt.Sprintf("%s/%s%s", screenshotPrefix, resUUID.String(), ext)

	if err := s.files.Save(path, file, true); err != nil {
		s.log.Error("Failed to store payment screenshot",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("%w: could not store screenshot, please retry the upload: %v", ErrUpload, err)
	}

	publicURL := s.files.PublicURL(path)

	if err := s.repo.Reservation.UpdatePaymentProof(ctx, resUUID, publicURL, entity.PaymentStatusReceived); err != nil {
		s.log.Error("Screenshot stored but reservation update failed",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
			zap.String("screenshot_url", publicURL),
		)
		return nil, fmt.Errorf("%w: screenshot saved but reservation update failed, please retry: %v", ErrPersistence, err)
	}

	s.log.Info("Payment proof uploaded",
		zap.String("reservation_id", reservationID),
		zap.String("screenshot_url", publicURL),
	)

	return &response.UploadResponse{
		ReservationID:        reservationID,
		PaymentScreenshotURL: publicURL,
		PaymentStatus:        string(entity.PaymentStatusReceived),
	}, nil
}
