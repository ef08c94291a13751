package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	fleetClient "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/ptr"
)

// UseCase use case расчета доступности яхты на календарный месяц
// Доступность - чистая функция от политики и текущих бронирований;
// чтение не требует блокировок, гонки разрешаются на этапе коммита мутаций
type UseCase struct {
	reservationRepo ReservationRepository
	fleetClient     FleetServiceClient
	policy          domain.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	fleetClient FleetServiceClient,
	policy domain.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		fleetClient:     fleetClient,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case расчета доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: yacht=%s, month=%s",
		req.YachtSlug, req.Month.Format(domain.MonthFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем яхту
	yacht, err := uc.fleetClient.GetYacht(ctx, req.YachtSlug)
	if err != nil {
		if errors.Is(err, fleetClient.ErrYachtNotFound) {
			uc.logger.Warn("GetAvailability: yacht slug=%s not found", req.YachtSlug)
			return nil, ErrYachtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get yacht slug=%s: %v", req.YachtSlug, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}

	if !yacht.Active {
		uc.logger.Warn("GetAvailability: yacht slug=%s is not active", req.YachtSlug)
		return nil, ErrYachtNotFound
	}

	// 3. Определяем таймзону яхты
	loc := yachtLocation(yacht, uc.logger)

	// 4. Границы месяца в локальном времени яхты, с запасом в сутки
	// на каждую сторону: буфер соседнего бронирования может
	// зацепить первый и последний день месяца
	monthStart := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	filter := domain.YachtBookingsFilter{
		YachtID: yacht.ID,
		From:    ptr.Ptr(monthStart.AddDate(0, 0, -1)),
		To:      ptr.Ptr(monthEnd.AddDate(0, 0, 1)),
	}

	reservations, err := uc.reservationRepo.GetForYachtWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrStoreUnavailable, err)
	}

	// 5. Считаем доступность каждого дня месяца
	days := make(map[string]domain.DayAvailability)
	for date := monthStart; date.Before(monthEnd); date = date.AddDate(0, 0, 1) {
		day := domain.ComputeDay(uc.policy, date, loc, reservations)
		days[date.Format(domain.DateFormat)] = day
	}

	uc.logger.Info("GetAvailability: computed %d days for yacht=%s, month=%s (%d reservations)",
		len(days), req.YachtSlug, req.Month.Format(domain.MonthFormat), len(reservations))

	return &Response{
		YachtSlug: req.YachtSlug,
		Month:     req.Month,
		Days:      days,
	}, nil
}

// yachtLocation загружает таймзону яхты, с fallback на UTC
func yachtLocation(yacht *fleetClient.Yacht, logger Logger) *time.Location {
	if yacht.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(yacht.Timezone)
	if err != nil {
		logger.Warn("GetAvailability: unknown timezone %q for yacht=%s, falling back to UTC",
			yacht.Timezone, yacht.Slug)
		return time.UTC
	}
	return loc
}
