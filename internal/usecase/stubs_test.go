package usecase

import (
	"bytes"
	"context"
	"io"
	"time"

	"studio-reservations/internal/data/entity"

	"github.com/google/uuid"
)

// stubReservationRepo keeps reservations in memory and records writes,
// so service tests can assert on exactly what would have been persisted.
type stubReservationRepo struct {
	byID     map[uuid.UUID]*entity.Reservation
	blocking []*entity.Reservation
	all      []*entity.Reservation

	created        []*entity.Reservation
	statusUpdates  map[uuid.UUID]entity.ReservationStatus
	proofUpdates   map[uuid.UUID]string
	deleted        []uuid.UUID
	createErr      error
	updateProofErr error
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{
		byID:          make(map[uuid.UUID]*entity.Reservation),
		statusUpdates: make(map[uuid.UUID]entity.ReservationStatus),
		proofUpdates:  make(map[uuid.UUID]string),
	}
}

func (s *stubReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, reservation)
	s.byID[reservation.ID] = reservation
	return nil
}

func (s *stubReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return s.byID[id], nil
}

func (s *stubReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, r := range s.all {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *stubReservationRepo) FindAll(_ context.Context) ([]*entity.Reservation, error) {
	return s.all, nil
}

func (s *stubReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

func (s *stubReservationRepo) FindBlockingByDate(_ context.Context, _ time.Time) ([]*entity.Reservation, error) {
	return s.blocking, nil
}

func (s *stubReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	s.statusUpdates[id] = status
	if r, ok := s.byID[id]; ok {
		r.ReservationStatus = status
	}
	return nil
}

func (s *stubReservationRepo) UpdatePaymentProof(_ context.Context, id uuid.UUID, screenshotURL string, status entity.PaymentStatus) error {
	if s.updateProofErr != nil {
		return s.updateProofErr
	}
	s.proofUpdates[id] = screenshotURL
	if r, ok := s.byID[id]; ok {
		r.PaymentScreenshotURL = &screenshotURL
		r.PaymentStatus = status
	}
	return nil
}

type stubUserRepo struct {
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User

	created   []*entity.User
	passwords map[uuid.UUID]string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:      make(map[uuid.UUID]*entity.User),
		byEmail:   make(map[string]*entity.User),
		passwords: make(map[uuid.UUID]string),
	}
}

func (s *stubUserRepo) add(user *entity.User) {
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	s.created = append(s.created, user)
	s.add(user)
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.byID[id], nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	s.passwords[id] = passwordHash
	if u, ok := s.byID[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

type stubSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  []string
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (s *stubSessionRepo) Create(_ context.Context, session *entity.Session) error {
	s.sessions[session.Token.String()] = session
	return nil
}

func (s *stubSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	return s.sessions[token], nil
}

func (s *stubSessionRepo) Revoke(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	delete(s.sessions, token)
	return nil
}

type stubResetTokenRepo struct {
	tokens map[uuid.UUID]*entity.PasswordResetToken
	used   []uuid.UUID
}

func newStubResetTokenRepo() *stubResetTokenRepo {
	return &stubResetTokenRepo{tokens: make(map[uuid.UUID]*entity.PasswordResetToken)}
}

func (s *stubResetTokenRepo) Create(_ context.Context, token *entity.PasswordResetToken) error {
	s.tokens[token.Token] = token
	return nil
}

func (s *stubResetTokenRepo) FindValidToken(_ context.Context, token uuid.UUID) (*entity.PasswordResetToken, error) {
	return s.tokens[token], nil
}

func (s *stubResetTokenRepo) MarkUsed(_ context.Context, id uuid.UUID) error {
	s.used = append(s.used, id)
	return nil
}

// stubFileStorage records saved files in memory.
type stubFileStorage struct {
	files   map[string][]byte
	saveErr error
}

func newStubFileStorage() *stubFileStorage {
	return &stubFileStorage{files: make(map[string][]byte)}
}

func (s *stubFileStorage) Save(path string, data io.Reader, _ bool) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, data); err != nil {
		return err
	}
	s.files[path] = buf.Bytes()
	return nil
}

func (s *stubFileStorage) PublicURL(path string) string {
	return "http://files.local/" + path
}

func (s *stubFileStorage) Delete(path string) error {
	delete(s.files, path)
	return nil
}

func (s *stubFileStorage) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}
