package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
	fleetClient "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/ptr"
)

// UseCase use case создания бронирования чартера
//
// Конфликты разрешаются тремя слоями: проверка guard-интервалов внутри
// SERIALIZABLE транзакции с FOR UPDATE, exclusion constraint в базе и
// срыв сериализации. Любой из них превращается в ErrSlotConflict, и
// ровно один из конкурирующих запросов на интервал выигрывает.
type UseCase struct {
	reservationRepo ReservationRepository
	auditRepo       AuditRepository
	fleetClient     FleetServiceClient
	txManager       TxManager
	policy          domain.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	auditRepo AuditRepository,
	fleetClient FleetServiceClient,
	txManager TxManager,
	policy domain.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		auditRepo:       auditRepo,
		fleetClient:     fleetClient,
		txManager:       txManager,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: yacht=%s, date=%s, start=%d, duration=%d, attendee=%s",
		req.YachtSlug, req.Date.Format(domain.DateFormat), req.StartHour, req.DurationHours, req.AttendeeEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка интервала против политики расписания
	if !uc.policy.IsStartAllowed(req.DurationHours, req.StartHour) {
		uc.logger.Warn("CreateBooking: policy violation: start=%d, duration=%d",
			req.StartHour, req.DurationHours)
		return nil, fmt.Errorf("%w: start %d:00 with duration %dh is not allowed",
			ErrPolicyViolation, req.StartHour, req.DurationHours)
	}

	// 3. Получаем яхту
	yacht, err := uc.fleetClient.GetYacht(ctx, req.YachtSlug)
	if err != nil {
		if errors.Is(err, fleetClient.ErrYachtNotFound) {
			uc.logger.Warn("CreateBooking: yacht slug=%s not found", req.YachtSlug)
			return nil, ErrYachtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get yacht slug=%s: %v", req.YachtSlug, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}

	if !yacht.Active {
		uc.logger.Warn("CreateBooking: yacht slug=%s is not active", req.YachtSlug)
		return nil, ErrYachtNotFound
	}

	loc := yachtLocation(yacht, uc.logger)

	// 4. Собираем бронирование
	res := uc.buildReservation(req, yacht.ID, loc)

	// 5. Проверка конфликта и вставка в одной SERIALIZABLE транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.ensureNoConflict(txCtx, res, ""); err != nil {
			return err
		}

		if _, err := uc.reservationRepo.Create(txCtx, res); err != nil {
			return err
		}

		return uc.auditRepo.Append(txCtx, uc.auditRecord(res, req.AttendeeEmail))
	})

	if err != nil {
		return nil, uc.mapMutationError(err, "CreateBooking", res.BookingUID)
	}

	uc.logger.Info("CreateBooking: created booking uid=%s for yacht=%s", res.BookingUID, req.YachtSlug)

	return &Response{
		Reservation: res,
		Shift:       uc.policy.Classify(req.StartHour, req.StartHour+req.DurationHours),
	}, nil
}

// buildReservation строит доменную модель из запроса
// Локальные дата и час превращаются в UTC-инстанты через таймзону яхты
func (uc *UseCase) buildReservation(req *Request, yachtID int64, loc *time.Location) *domain.Reservation {
	startAt := time.Date(
		req.Date.Year(), req.Date.Month(), req.Date.Day(),
		req.StartHour, 0, 0, 0, loc,
	).UTC()

	res := &domain.Reservation{
		BookingUID:    uuid.NewString(),
		PriorUIDs:     []string{},
		YachtID:       yachtID,
		StartAt:       startAt,
		EndAt:         startAt.Add(time.Duration(req.DurationHours) * time.Hour),
		Status:        domain.StatusBooked,
		Source:        req.Source,
		AttendeeEmail: req.AttendeeEmail,
		AttendeeName:  req.AttendeeName,
		Notes:         req.Notes,
	}
	res.ApplyGuard(uc.policy)

	return res
}

// ensureNoConflict перечитывает пересекающиеся бронирования с
// блокировкой и проверяет межрейсовый буфер
// excludeUID исключает переносимое бронирование из проверки
func (uc *UseCase) ensureNoConflict(ctx context.Context, res *domain.Reservation, excludeUID string) error {
	filter := domain.YachtBookingsFilter{
		YachtID:    res.YachtID,
		From:       ptr.Ptr(res.GuardStart),
		To:         ptr.Ptr(res.GuardEnd),
		ExcludeUID: excludeUID,
	}

	existing, err := uc.reservationRepo.GetForYachtWithFilter(ctx, filter)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if res.GuardIntersects(other) {
			return fmt.Errorf("%w: interval intersects booking uid=%s",
				ErrSlotConflict, other.BookingUID)
		}
	}

	return nil
}

func (uc *UseCase) auditRecord(res *domain.Reservation, actor string) *domain.AuditRecord {
	payload, _ := json.Marshal(map[string]interface{}{
		"yacht_id": res.YachtID,
		"start_at": res.StartAt,
		"end_at":   res.EndAt,
		"source":   res.Source,
		"attendee": res.AttendeeEmail,
	})

	return &domain.AuditRecord{
		BookingUID: res.BookingUID,
		Action:     domain.AuditActionCreate,
		Actor:      actor,
		Payload:    payload,
	}
}

// mapMutationError переводит ошибки хранилища в ошибки usecase
// Нарушение exclusion constraint и срыв сериализации означают, что
// конкурент успел занять интервал
func (uc *UseCase) mapMutationError(err error, op string, uid string) error {
	switch {
	case errors.Is(err, ErrSlotConflict):
		uc.logger.Warn("%s: slot conflict for uid=%s: %v", op, uid, err)
		return err
	case errors.Is(err, reservation.ErrIntervalTaken):
		uc.logger.Warn("%s: interval taken for uid=%s", op, uid)
		return fmt.Errorf("%w: interval already taken", ErrSlotConflict)
	case reservation.IsSerializationFailure(err):
		uc.logger.Warn("%s: serialization failure for uid=%s, concurrent writer won", op, uid)
		return fmt.Errorf("%w: concurrent booking won", ErrSlotConflict)
	default:
		uc.logger.Error("%s: mutation failed for uid=%s: %v", op, uid, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

// yachtLocation загружает таймзону яхты, с fallback на UTC
func yachtLocation(yacht *fleetClient.Yacht, logger Logger) *time.Location {
	if yacht.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(yacht.Timezone)
	if err != nil {
		logger.Warn("CreateBooking: unknown timezone %q for yacht=%s, falling back to UTC",
			yacht.Timezone, yacht.Slug)
		return time.UTC
	}
	return loc
}
