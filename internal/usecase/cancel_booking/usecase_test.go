package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
)

type fakeReservationRepo struct {
	current   *domain.Reservation
	cancelErr error
	cancelled bool
	gotReason string
}

func (f *fakeReservationRepo) GetByUID(_ context.Context, uid string) (*domain.Reservation, error) {
	if f.current == nil || f.current.BookingUID != uid {
		return nil, reservation.ErrReservationNotFound
	}
	return f.current, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ string, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	f.gotReason = reason
	return nil
}

type fakeAuditRepo struct {
	records []*domain.AuditRecord
}

func (f *fakeAuditRepo) Append(_ context.Context, rec *domain.AuditRecord) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeIdentityClient struct {
	admin bool
	err   error
	calls int
}

func (f *fakeIdentityClient) IsAdmin(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.admin, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookedReservation() *domain.Reservation {
	res := &domain.Reservation{
		ID:            1,
		BookingUID:    "uid-1",
		YachtID:       7,
		StartAt:       time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC),
		EndAt:         time.Date(2026, time.September, 10, 13, 0, 0, 0, time.UTC),
		Status:        domain.StatusBooked,
		AttendeeEmail: "guest@example.com",
	}
	res.ApplyGuard(domain.DefaultPolicy())
	return res
}

func newUseCase(repo *fakeReservationRepo, audit *fakeAuditRepo, identity *fakeIdentityClient) *UseCase {
	return NewUseCase(repo, audit, identity, fakeTxManager{}, nopLogger{})
}

func TestExecute_OwnerCancels(t *testing.T) {
	repo := &fakeReservationRepo{current: bookedReservation()}
	audit := &fakeAuditRepo{}
	identity := &fakeIdentityClient{}
	uc := newUseCase(repo, audit, identity)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingUID: "uid-1",
		ActorEmail: "guest@example.com",
		Reason:     "weather",
	})
	require.NoError(t, err)

	assert.False(t, resp.AlreadyCancelled)
	assert.Equal(t, domain.StatusCancelled, resp.Reservation.Status)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "weather", repo.gotReason)

	// Владелец не требует похода в IdentityService
	assert.Zero(t, identity.calls)

	require.Len(t, audit.records, 1)
	assert.Equal(t, domain.AuditActionCancel, audit.records[0].Action)
	assert.Equal(t, "guest@example.com", audit.records[0].Actor)
}

func TestExecute_AdminCancels(t *testing.T) {
	repo := &fakeReservationRepo{current: bookedReservation()}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingUID: "uid-1",
		ActorEmail: "admin@example.com",
		Reason:     "maintenance",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.False(t, resp.AlreadyCancelled)
}

func TestExecute_StrangerForbidden(t *testing.T) {
	repo := &fakeReservationRepo{current: bookedReservation()}
	audit := &fakeAuditRepo{}
	uc := newUseCase(repo, audit, &fakeIdentityClient{admin: false})

	_, err := uc.Execute(context.Background(), &Request{
		BookingUID: "uid-1",
		ActorEmail: "stranger@example.com",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, repo.cancelled)
	assert.Empty(t, audit.records)
}

func TestExecute_IdempotentOnCancelled(t *testing.T) {
	current := bookedReservation()
	current.Status = domain.StatusCancelled
	repo := &fakeReservationRepo{current: current}
	audit := &fakeAuditRepo{}
	uc := newUseCase(repo, audit, &fakeIdentityClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingUID: "uid-1",
		ActorEmail: "guest@example.com",
	})
	require.NoError(t, err)

	assert.True(t, resp.AlreadyCancelled)
	// Повторная отмена не пишет ни отмену, ни аудит
	assert.False(t, repo.cancelled)
	assert.Empty(t, audit.records)
}

func TestExecute_ConcurrentCancelIsSuccess(t *testing.T) {
	repo := &fakeReservationRepo{current: bookedReservation(), cancelErr: reservation.ErrAlreadyCancelled}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingUID: "uid-1",
		ActorEmail: "guest@example.com",
	})
	require.NoError(t, err)
	assert.True(t, resp.AlreadyCancelled)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeAuditRepo{}, &fakeIdentityClient{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingUID: "unknown",
		ActorEmail: "guest@example.com",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{current: bookedReservation(), cancelErr: errors.New("connection refused")}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingUID: "uid-1",
		ActorEmail: "guest@example.com",
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
