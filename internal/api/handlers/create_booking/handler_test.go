package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	createBooking "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func successResponse() *createBooking.Response {
	res := &domain.Reservation{
		BookingUID:    "uid-1",
		YachtID:       7,
		StartAt:       time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC),
		EndAt:         time.Date(2026, time.September, 10, 13, 0, 0, 0, time.UTC),
		Status:        domain.StatusBooked,
		Source:        domain.SourceWeb,
		AttendeeEmail: "guest@example.com",
	}
	return &createBooking.Response{Reservation: res, Shift: domain.ShiftMorning}
}

const validBody = `{"yachtSlug":"serenity","date":"2026-09-10","startTime":"09:00","durationHours":4,"attendeeName":"Guest"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: successResponse()}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookingUid":"uid-1"`)
	assert.Contains(t, rec.Body.String(), `"startTime":"09:00"`)
	assert.Contains(t, rec.Body.String(), `"shift":"morning"`)

	require.NotNil(t, uc.got)
	assert.Equal(t, 9, uc.got.StartHour)
	assert.Equal(t, domain.SourceWeb, uc.got.Source)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"yachtSlug":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NonHourStartTime(t *testing.T) {
	body := strings.Replace(validBody, "09:00", "09:30", 1)
	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "policy violation", err: createBooking.ErrPolicyViolation, status: http.StatusBadRequest},
		{name: "yacht not found", err: createBooking.ErrYachtNotFound, status: http.StatusNotFound},
		{name: "slot conflict", err: createBooking.ErrSlotConflict, status: http.StatusConflict},
		{name: "store unavailable", err: createBooking.ErrStoreUnavailable, status: http.StatusServiceUnavailable},
		{name: "internal", err: createBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
