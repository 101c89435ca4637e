package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studio-reservations/internal/data/entity"
	"studio-reservations/internal/data/repository"
	"studio-reservations/internal/dto/response"
	"studio-reservations/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListReservations(ctx context.Context, status, search string) ([]*response.ReservationResponse, error)
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	ConfirmReservation(ctx context.Context, id string) error
	DeclineReservation(ctx context.Context, id string) error
	DeleteReservation(ctx context.Context, id string) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
		now:  time.Now,
	}
}

// ListReservations fetches the full table and filters in memory, the
// same way the admin page re-filters its loaded snapshot on every
// search keystroke. Status matching treats a blank stored status as
// Pending; search is case-insensitive over name, email and phone.
func (s *adminService) ListReservations(ctx context.Context, status, search string) ([]*response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservations: %v", ErrPersistence, err)
	}

	filtered := filterReservations(reservations, status, search)
	return response.ReservationsToResponse(filtered), nil
}

func filterReservations(reservations []*entity.Reservation, status, search string) []*entity.Reservation {
	status = strings.ToLower(strings.TrimSpace(status))
	search = strings.ToLower(strings.TrimSpace(search))

	var result []*entity.Reservation
	for _, r := range reservations {
		if status != "" {
			current := strings.ToLower(strings.TrimSpace(string(r.ReservationStatus)))
			isPending := current == "" || current == "pending"

			switch status {
			case "pending":
				if !isPending {
					continue
				}
			default:
				if current != status {
					continue
				}
			}
		}

		if search != "" {
			if !strings.Contains(strings.ToLower(r.FullName), search) &&
				!strings.Contains(strings.ToLower(r.Email), search) &&
				!strings.Contains(strings.ToLower(r.Phone), search) {
				continue
			}
		}

		result = append(result, r)
	}

	return result
}

// Dashboard re-derives every aggregate from the current snapshot: no
// counters are maintained incrementally anywhere.
func (s *adminService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservations: %v", ErrPersistence, err)
	}

	return buildDashboard(reservations, s.now()), nil
}

func buildDashboard(reservations []*entity.Reservation, now time.Time) *response.DashboardResponse {
	dash := &response.DashboardResponse{
		TotalReservations: len(reservations),
	}

	weekAgo := now.AddDate(0, 0, -7)

	for _, r := range reservations {
		if r.PaymentStatus == entity.PaymentStatusPending {
			dash.PendingPaymentTotal += r.EstimatedPrice
		}

		if r.ReservationStatus == entity.ReservationStatusConfirmed {
			dash.ConfirmedCount++
			dash.TotalRevenue += r.EstimatedPrice
		}

		if r.CreatedAt.After(weekAgo) {
			dash.RecentCount++
		}
	}

	dash.PendingPaymentTotal = utils.Round2(dash.PendingPaymentTotal)
	dash.TotalRevenue = utils.Round2(dash.TotalRevenue)

	return dash
}

// ConfirmReservation moves a pending reservation to Confirmed. The
// admin page only offers the button once a payment screenshot exists,
// and that rule is enforced here too. Conflicts against other confirmed
// reservations are NOT re-checked: admin judgment overrides the
// automated slot check.
func (s *adminService) ConfirmReservation(ctx context.Context, id string) error {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return err
	}

	if reservation.ReservationStatus == entity.ReservationStatusConfirmed {
		return fmt.Errorf("%w: reservation %s is already confirmed", ErrValidation, id)
	}
	if reservation.ReservationStatus == entity.ReservationStatusDeclined {
		return fmt.Errorf("%w: reservation %s was declined and cannot be confirmed", ErrValidation, id)
	}
	if reservation.PaymentScreenshotURL == nil {
		return fmt.Errorf("%w: reservation %s has no payment proof yet", ErrValidation, id)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusConfirmed); err != nil {
		return fmt.Errorf("%w: confirm reservation: %v", ErrPersistence, err)
	}

	s.log.Info("Reservation confirmed", zap.String("reservation_id", id))
	return nil
}

// DeclineReservation is terminal: a declined reservation can never be
// confirmed afterwards.
func (s *adminService) DeclineReservation(ctx context.Context, id string) error {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return err
	}

	if reservation.ReservationStatus != entity.ReservationStatusPending {
		return fmt.Errorf("%w: only pending reservations can be declined", ErrValidation)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusDeclined); err != nil {
		return fmt.Errorf("%w: decline reservation: %v", ErrPersistence, err)
	}

	s.log.Info("Reservation declined", zap.String("reservation_id", id))
	return nil
}

func (s *adminService) DeleteReservation(ctx context.Context, id string) error {
	reservation, err := s.findReservation(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, reservation.ID); err != nil {
		return fmt.Errorf("%w: delete reservation: %v", ErrPersistence, err)
	}

	return nil
}

func (s *adminService) findReservation(ctx context.Context, id string) (*entity.Reservation, error) {
	resUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrValidation, id)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, resUUID)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservation: %v", ErrPersistence, err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}

	return reservation, nil
}
