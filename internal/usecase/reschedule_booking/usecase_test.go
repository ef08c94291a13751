package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
)

type fakeReservationRepo struct {
	current        *domain.Reservation
	existing       []*domain.Reservation
	rescheduleErr  error
	rescheduled    *domain.Reservation
	rescheduleUIDs [2]string // old, new
}

func (f *fakeReservationRepo) GetByUID(_ context.Context, uid string) (*domain.Reservation, error) {
	if f.current == nil || f.current.BookingUID != uid {
		return nil, reservation.ErrReservationNotFound
	}
	return f.current, nil
}

func (f *fakeReservationRepo) GetForYachtWithFilter(_ context.Context, _ domain.YachtBookingsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservationRepo) Reschedule(_ context.Context, oldUID, newUID string, startAt, endAt, guardStart, guardEnd time.Time) (*domain.Reservation, error) {
	if f.rescheduleErr != nil {
		return nil, f.rescheduleErr
	}
	f.rescheduleUIDs = [2]string{oldUID, newUID}

	updated := *f.current
	updated.BookingUID = newUID
	updated.PriorUIDs = append(append([]string{}, f.current.PriorUIDs...), oldUID)
	updated.StartAt = startAt
	updated.EndAt = endAt
	updated.GuardStart = guardStart
	updated.GuardEnd = guardEnd
	f.rescheduled = &updated
	return &updated, nil
}

type fakeAuditRepo struct {
	records []*domain.AuditRecord
}

func (f *fakeAuditRepo) Append(_ context.Context, rec *domain.AuditRecord) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeFleetClient struct {
	yacht *fleetservice.Yacht
	err   error
}

func (f *fakeFleetClient) GetYachtByID(_ context.Context, _ int64) (*fleetservice.Yacht, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.yacht, nil
}

type fakeIdentityClient struct {
	admin bool
	err   error
}

func (f *fakeIdentityClient) IsAdmin(_ context.Context, _ string) (bool, error) {
	return f.admin, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookedReservation() *domain.Reservation {
	res := &domain.Reservation{
		ID:            1,
		BookingUID:    uuid.NewString(),
		PriorUIDs:     []string{},
		YachtID:       7,
		StartAt:       time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC),
		EndAt:         time.Date(2026, time.September, 10, 13, 0, 0, 0, time.UTC),
		Status:        domain.StatusBooked,
		Source:        domain.SourceWeb,
		AttendeeEmail: "guest@example.com",
	}
	res.ApplyGuard(domain.DefaultPolicy())
	return res
}

func validRequest(uid string) *Request {
	return &Request{
		BookingUID:    uid,
		Date:          time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		StartHour:     6,
		DurationHours: 4,
		ActorEmail:    "admin@example.com",
	}
}

func newUseCase(repo *fakeReservationRepo, audit *fakeAuditRepo, identity *fakeIdentityClient) *UseCase {
	return NewUseCase(
		repo, audit,
		&fakeFleetClient{yacht: &fleetservice.Yacht{ID: 7, Slug: "serenity", Timezone: "UTC", Active: true}},
		identity,
		fakeTxManager{},
		domain.DefaultPolicy(),
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	current := bookedReservation()
	repo := &fakeReservationRepo{current: current}
	audit := &fakeAuditRepo{}
	uc := newUseCase(repo, audit, &fakeIdentityClient{admin: true})

	resp, err := uc.Execute(context.Background(), validRequest(current.BookingUID))
	require.NoError(t, err)

	// Новый интервал 06:00-10:00 лежит в утренней смене
	assert.Equal(t, domain.ShiftMorning, resp.Shift)

	res := resp.Reservation
	assert.NotEqual(t, current.BookingUID, res.BookingUID)
	assert.Equal(t, []string{current.BookingUID}, res.PriorUIDs)
	assert.Equal(t, time.Date(2026, time.September, 12, 6, 0, 0, 0, time.UTC), res.StartAt)
	assert.Equal(t, time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC), res.EndAt)
	assert.Equal(t, time.Date(2026, time.September, 12, 5, 0, 0, 0, time.UTC), res.GuardStart)
	assert.Equal(t, time.Date(2026, time.September, 12, 11, 0, 0, 0, time.UTC), res.GuardEnd)

	require.Len(t, audit.records, 1)
	assert.Equal(t, domain.AuditActionReschedule, audit.records[0].Action)
	assert.Equal(t, res.BookingUID, audit.records[0].BookingUID)
	assert.Equal(t, "admin@example.com", audit.records[0].Actor)
}

func TestExecute_NonAdminForbidden(t *testing.T) {
	current := bookedReservation()
	repo := &fakeReservationRepo{current: current}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: false})

	_, err := uc.Execute(context.Background(), validRequest(current.BookingUID))
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, repo.rescheduled)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	_, err := uc.Execute(context.Background(), validRequest("unknown-uid"))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBooking(t *testing.T) {
	current := bookedReservation()
	current.Status = domain.StatusCancelled
	repo := &fakeReservationRepo{current: current}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	_, err := uc.Execute(context.Background(), validRequest(current.BookingUID))
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestExecute_PolicyViolation(t *testing.T) {
	current := bookedReservation()
	repo := &fakeReservationRepo{current: current}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	req := validRequest(current.BookingUID)
	req.StartHour = 11
	req.DurationHours = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPolicyViolation)
}

func TestExecute_ConflictKeepsOriginal(t *testing.T) {
	current := bookedReservation()
	other := &domain.Reservation{
		BookingUID: "other-uid",
		YachtID:    7,
		StartAt:    time.Date(2026, time.September, 12, 6, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, time.September, 12, 11, 0, 0, 0, time.UTC),
		Status:     domain.StatusBooked,
	}
	other.ApplyGuard(domain.DefaultPolicy())

	repo := &fakeReservationRepo{current: current, existing: []*domain.Reservation{other}}
	audit := &fakeAuditRepo{}
	uc := newUseCase(repo, audit, &fakeIdentityClient{admin: true})

	_, err := uc.Execute(context.Background(), validRequest(current.BookingUID))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Исходное бронирование не тронуто
	assert.Nil(t, repo.rescheduled)
	assert.Empty(t, audit.records)
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	current := bookedReservation()
	// Репозиторий с ExcludeUID не вернул бы само бронирование;
	// пустой existing моделирует именно это
	repo := &fakeReservationRepo{current: current}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	// Сдвиг на час внутри собственного дня
	req := validRequest(current.BookingUID)
	req.Date = time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	req.StartHour = 8

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 10, 8, 0, 0, 0, time.UTC), resp.Reservation.StartAt)
}

func TestExecute_ConcurrentCancel(t *testing.T) {
	current := bookedReservation()
	repo := &fakeReservationRepo{current: current, rescheduleErr: reservation.ErrAlreadyCancelled}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	_, err := uc.Execute(context.Background(), validRequest(current.BookingUID))
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestExecute_ConstraintConflict(t *testing.T) {
	current := bookedReservation()
	repo := &fakeReservationRepo{current: current, rescheduleErr: reservation.ErrIntervalTaken}
	uc := newUseCase(repo, &fakeAuditRepo{}, &fakeIdentityClient{admin: true})

	_, err := uc.Execute(context.Background(), validRequest(current.BookingUID))
	assert.ErrorIs(t, err, ErrSlotConflict)
}
