package usecase

import (
	"context"
	"testing"
	"time"

	"studio-reservations/internal/data/entity"
	"studio-reservations/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAdminService(resRepo *stubReservationRepo) *adminService {
	return &adminService{
		repo: &repository.Repository{Reservation: resRepo},
		log:  zap.NewNop(),
		now:  func() time.Time { return testNow },
	}
}

func adminFixture(name, email, phone string, status entity.ReservationStatus) *entity.Reservation {
	return &entity.Reservation{
		Base:              entity.Base{ID: uuid.New(), CreatedAt: testNow},
		FullName:          name,
		Email:             email,
		Phone:             phone,
		EstimatedPrice:    5999,
		PaymentStatus:     entity.PaymentStatusPending,
		ReservationStatus: status,
	}
}

func TestFilterReservations(t *testing.T) {
	pending := adminFixture("Maya Torres", "maya@example.com", "555-0134", entity.ReservationStatusPending)
	blankStatus := adminFixture("Leo Grant", "leo@example.com", "555-0177", entity.ReservationStatus(""))
	confirmed := adminFixture("Ana Silva", "ana@example.com", "555-0191", entity.ReservationStatusConfirmed)
	all := []*entity.Reservation{pending, blankStatus, confirmed}

	// A blank stored status counts as pending.
	got := filterReservations(all, "pending", "")
	assert.ElementsMatch(t, []*entity.Reservation{pending, blankStatus}, got)

	got = filterReservations(all, "confirmed", "")
	assert.Equal(t, []*entity.Reservation{confirmed}, got)

	// Search is case-insensitive across name, email and phone.
	got = filterReservations(all, "", "MAYA")
	assert.Equal(t, []*entity.Reservation{pending}, got)

	got = filterReservations(all, "", "0191")
	assert.Equal(t, []*entity.Reservation{confirmed}, got)

	got = filterReservations(all, "pending", "leo@")
	assert.Equal(t, []*entity.Reservation{blankStatus}, got)

	// No filters returns everything.
	got = filterReservations(all, "", "")
	assert.Len(t, got, 3)
}

func TestBuildDashboard(t *testing.T) {
	paid := adminFixture("Ana Silva", "ana@example.com", "555-0191", entity.ReservationStatusConfirmed)
	paid.PaymentStatus = entity.PaymentStatusReceived
	paid.EstimatedPrice = 7999

	pending := adminFixture("Maya Torres", "maya@example.com", "555-0134", entity.ReservationStatusPending)

	old := adminFixture("Leo Grant", "leo@example.com", "555-0177", entity.ReservationStatusPending)
	old.CreatedAt = testNow.AddDate(0, 0, -10)

	dash := buildDashboard([]*entity.Reservation{paid, pending, old}, testNow)

	assert.Equal(t, 3, dash.TotalReservations)
	// Both pending-payment rows contribute their full estimated price.
	assert.Equal(t, float64(2*5999), dash.PendingPaymentTotal)
	assert.Equal(t, 1, dash.ConfirmedCount)
	assert.Equal(t, float64(7999), dash.TotalRevenue)
	assert.Equal(t, 2, dash.RecentCount)
}

func TestBuildDashboardEmpty(t *testing.T) {
	dash := buildDashboard(nil, testNow)
	assert.Zero(t, dash.TotalReservations)
	assert.Zero(t, dash.PendingPaymentTotal)
	assert.Zero(t, dash.TotalRevenue)
}

func TestConfirmReservation(t *testing.T) {
	resRepo := newStubReservationRepo()
	svc := newTestAdminService(resRepo)

	url := "http://files.local/payment-screenshots/x.png"
	reservation := adminFixture("Maya Torres", "maya@example.com", "555-0134", entity.ReservationStatusPending)
	reservation.PaymentScreenshotURL = &url
	resRepo.byID[reservation.ID] = reservation

	err := svc.ConfirmReservation(context.Background(), reservation.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, resRepo.statusUpdates[reservation.ID])
}

func TestConfirmReservationRequiresScreenshot(t *testing.T) {
	resRepo := newStubReservationRepo()
	svc := newTestAdminService(resRepo)

	reservation := adminFixture("Maya Torres", "maya@example.com", "555-0134", entity.ReservationStatusPending)
	resRepo.byID[reservation.ID] = reservation

	err := svc.ConfirmReservation(context.Background(), reservation.ID.String())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, resRepo.statusUpdates)
}

func TestConfirmReservationTerminalStates(t *testing.T) {
	resRepo := newStubReservationRepo()
	svc := newTestAdminService(resRepo)

	url := "http://files.local/payment-screenshots/x.png"

	confirmed := adminFixture("Ana Silva", "ana@example.com", "555-0191", entity.ReservationStatusConfirmed)
	confirmed.PaymentScreenshotURL = &url
	resRepo.byID[confirmed.ID] = confirmed

	declined := adminFixture("Leo Grant", "leo@example.com", "555-0177", entity.ReservationStatusDeclined)
	declined.PaymentScreenshotURL = &url
	resRepo.byID[declined.ID] = declined

	assert.ErrorIs(t, svc.ConfirmReservation(context.Background(), confirmed.ID.String()), ErrValidation)
	// Declined is terminal.
	assert.ErrorIs(t, svc.ConfirmReservation(context.Background(), declined.ID.String()), ErrValidation)
}

func TestConfirmReservationNotFound(t *testing.T) {
	svc := newTestAdminService(newStubReservationRepo())

	err := svc.ConfirmReservation(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeclineReservation(t *testing.T) {
	resRepo := newStubReservationRepo()
	svc := newTestAdminService(resRepo)

	reservation := adminFixture("Maya Torres", "maya@example.com", "555-0134", entity.ReservationStatusPending)
	resRepo.byID[reservation.ID] = reservation

	require.NoError(t, svc.DeclineReservation(context.Background(), reservation.ID.String()))
	assert.Equal(t, entity.ReservationStatusDeclined, resRepo.statusUpdates[reservation.ID])

	// Only pending reservations can be declined.
	err := svc.DeclineReservation(context.Background(), reservation.ID.String())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteReservation(t *testing.T) {
	resRepo := newStubReservationRepo()
	svc := newTestAdminService(resRepo)

	reservation := adminFixture("Maya Torres", "maya@example.com", "555-0134", entity.ReservationStatusPending)
	resRepo.byID[reservation.ID] = reservation

	require.NoError(t, svc.DeleteReservation(context.Background(), reservation.ID.String()))
	assert.Equal(t, []uuid.UUID{reservation.ID}, resRepo.deleted)
}
