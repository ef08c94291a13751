package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	gotFilter    domain.YachtBookingsFilter
}

func (f *fakeReservationRepo) GetForYachtWithFilter(_ context.Context, filter domain.YachtBookingsFilter) ([]*domain.Reservation, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fakeFleetClient struct {
	yacht *fleetservice.Yacht
	err   error
}

func (f *fakeFleetClient) GetYacht(_ context.Context, _ string) (*fleetservice.Yacht, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.yacht, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeYacht() *fleetservice.Yacht {
	return &fleetservice.Yacht{
		ID:       7,
		Slug:     "serenity",
		Name:     "Serenity",
		Timezone: "UTC",
		Active:   true,
	}
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyMonth(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, &fakeFleetClient{yacht: activeYacht()}, domain.DefaultPolicy(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{YachtSlug: "serenity", Month: month(2026, time.September)})
	require.NoError(t, err)

	assert.Len(t, resp.Days, 30)

	day, ok := resp.Days["2026-09-15"]
	require.True(t, ok)
	assert.Equal(t, []int{6, 7, 8, 9, 10, 15}, day.ValidStartsByDuration[3])
	assert.Equal(t, []int{6, 7, 8, 9}, day.ValidStartsByDuration[4])
	assert.Equal(t, []int{6, 7, 8, 9, 10}, day.ValidStartsByDuration[8])
}

func TestExecute_BookingBlocksDay(t *testing.T) {
	start := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
	res := &domain.Reservation{
		YachtID: 7,
		StartAt: start,
		EndAt:   start.Add(4 * time.Hour),
		Status:  domain.StatusBooked,
	}
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{res}}
	uc := NewUseCase(repo, &fakeFleetClient{yacht: activeYacht()}, domain.DefaultPolicy(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{YachtSlug: "serenity", Month: month(2026, time.September)})
	require.NoError(t, err)

	// 09:00-13:00 плюс буферы блокируют [7, 15); остается только 15:00 на 3 часа
	blocked := resp.Days["2026-09-10"]
	assert.Equal(t, []int{15}, blocked.ValidStartsByDuration[3])
	assert.Empty(t, blocked.ValidStartsByDuration[5])

	// Соседний день не задет
	free := resp.Days["2026-09-11"]
	assert.Equal(t, []int{6, 7, 8, 9, 10, 15}, free.ValidStartsByDuration[3])
}

func TestExecute_FilterPadsMonthBounds(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, &fakeFleetClient{yacht: activeYacht()}, domain.DefaultPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{YachtSlug: "serenity", Month: month(2026, time.September)})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.From)
	require.NotNil(t, repo.gotFilter.To)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), *repo.gotFilter.From)
	assert.Equal(t, time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC), *repo.gotFilter.To)
	assert.Equal(t, int64(7), repo.gotFilter.YachtID)
}

func TestExecute_YachtNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeFleetClient{err: fleetservice.ErrYachtNotFound}, domain.DefaultPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{YachtSlug: "ghost", Month: month(2026, time.September)})
	assert.ErrorIs(t, err, ErrYachtNotFound)
}

func TestExecute_InactiveYachtTreatedAsNotFound(t *testing.T) {
	yacht := activeYacht()
	yacht.Active = false
	uc := NewUseCase(&fakeReservationRepo{}, &fakeFleetClient{yacht: yacht}, domain.DefaultPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{YachtSlug: "serenity", Month: month(2026, time.September)})
	assert.ErrorIs(t, err, ErrYachtNotFound)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakeFleetClient{yacht: activeYacht()}, domain.DefaultPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{YachtSlug: "serenity", Month: month(2026, time.September)})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeFleetClient{yacht: activeYacht()}, domain.DefaultPolicy(), nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty slug", req: &Request{Month: month(2026, time.September)}},
		{name: "zero month", req: &Request{YachtSlug: "serenity"}},
		{name: "mid-month date", req: &Request{YachtSlug: "serenity", Month: time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
