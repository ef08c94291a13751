package reschedule_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/ptr"
)

// UseCase use case переноса бронирования на новый интервал
//
// Перенос атомарен: при конфликте нового интервала исходное
// бронирование остается нетронутым. Успешный перенос ротирует
// публичный UID, старый сохраняется в истории prior_uids.
type UseCase struct {
	reservationRepo ReservationRepository
	auditRepo       AuditRepository
	fleetClient     FleetServiceClient
	identityClient  IdentityServiceClient
	txManager       TxManager
	policy          domain.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	auditRepo AuditRepository,
	fleetClient FleetServiceClient,
	identityClient IdentityServiceClient,
	txManager TxManager,
	policy domain.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		auditRepo:       auditRepo,
		fleetClient:     fleetClient,
		identityClient:  identityClient,
		txManager:       txManager,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: uid=%s, date=%s, start=%d, duration=%d, actor=%s",
		req.BookingUID, req.Date.Format(domain.DateFormat), req.StartHour, req.DurationHours, req.ActorEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Перенос доступен только администратору
	isAdmin, err := uc.identityClient.IsAdmin(ctx, req.ActorEmail)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to check admin role for %s: %v", req.ActorEmail, err)
		return nil, fmt.Errorf("%w: failed to check admin role: %v", ErrInternal, err)
	}
	if !isAdmin {
		uc.logger.Warn("RescheduleBooking: actor=%s is not an admin", req.ActorEmail)
		return nil, ErrForbidden
	}

	// 3. Проверка нового интервала против политики расписания
	if !uc.policy.IsStartAllowed(req.DurationHours, req.StartHour) {
		uc.logger.Warn("RescheduleBooking: policy violation: start=%d, duration=%d",
			req.StartHour, req.DurationHours)
		return nil, fmt.Errorf("%w: start %d:00 with duration %dh is not allowed",
			ErrPolicyViolation, req.StartHour, req.DurationHours)
	}

	// 4. Получаем текущее бронирование
	current, err := uc.reservationRepo.GetByUID(ctx, req.BookingUID)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			uc.logger.Warn("RescheduleBooking: booking uid=%s not found", req.BookingUID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking uid=%s: %v", req.BookingUID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrStoreUnavailable, err)
	}

	if current.IsCancelled() {
		uc.logger.Warn("RescheduleBooking: booking uid=%s is already cancelled", req.BookingUID)
		return nil, ErrAlreadyCancelled
	}

	// 5. Таймзона яхты нужна для материализации нового интервала
	loc, err := uc.yachtLocation(ctx, current.YachtID)
	if err != nil {
		return nil, err
	}

	// 6. Собираем новый интервал
	startAt := time.Date(
		req.Date.Year(), req.Date.Month(), req.Date.Day(),
		req.StartHour, 0, 0, 0, loc,
	).UTC()

	next := &domain.Reservation{
		YachtID: current.YachtID,
		StartAt: startAt,
		EndAt:   startAt.Add(time.Duration(req.DurationHours) * time.Hour),
	}
	next.ApplyGuard(uc.policy)

	newUID := uuid.NewString()

	// 7. Проверка конфликта и перенос в одной SERIALIZABLE транзакции
	// Само переносимое бронирование исключается из проверки: сдвиг
	// внутри собственного интервала легален
	var updated *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.ensureNoConflict(txCtx, next, req.BookingUID); err != nil {
			return err
		}

		updated, err = uc.reservationRepo.Reschedule(
			txCtx, req.BookingUID, newUID,
			next.StartAt, next.EndAt, next.GuardStart, next.GuardEnd,
		)
		if err != nil {
			return err
		}

		return uc.auditRepo.Append(txCtx, uc.auditRecord(current, updated, req.ActorEmail))
	})

	if err != nil {
		return nil, uc.mapMutationError(err, req.BookingUID)
	}

	uc.logger.Info("RescheduleBooking: booking uid=%s rescheduled, new uid=%s", req.BookingUID, updated.BookingUID)

	return &Response{
		Reservation: updated,
		Shift:       uc.policy.Classify(req.StartHour, req.StartHour+req.DurationHours),
	}, nil
}

// ensureNoConflict перечитывает пересекающиеся бронирования с
// блокировкой и проверяет межрейсовый буфер
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

func (uc *UseCase) auditRecord(before, after *domain.Reservation, actor string) *domain.AuditRecord {
	payload, _ := json.Marshal(map[string]interface{}{
		"prior_uid":    before.BookingUID,
		"old_start_at": before.StartAt,
		"old_end_at":   before.EndAt,
		"new_start_at": after.StartAt,
		"new_end_at":   after.EndAt,
	})

	return &domain.AuditRecord{
		BookingUID: after.BookingUID,
		Action:     domain.AuditActionReschedule,
		Actor:      actor,
		Payload:    payload,
	}
}

func (uc *UseCase) yachtLocation(ctx context.Context, yachtID int64) (*time.Location, error) {
	yacht, err := uc.fleetClient.GetYachtByID(ctx, yachtID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get yacht id=%d: %v", yachtID, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}

	if yacht.Timezone == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(yacht.Timezone)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: unknown timezone %q for yacht id=%d, falling back to UTC",
			yacht.Timezone, yachtID)
		return time.UTC, nil
	}
	return loc, nil
}

// mapMutationError переводит ошибки хранилища в ошибки usecase
func (uc *UseCase) mapMutationError(err error, uid string) error {
	switch {
	case errors.Is(err, ErrSlotConflict):
		uc.logger.Warn("RescheduleBooking: slot conflict for uid=%s: %v", uid, err)
		return err
	case errors.Is(err, reservation.ErrIntervalTaken):
		uc.logger.Warn("RescheduleBooking: interval taken for uid=%s", uid)
		return fmt.Errorf("%w: interval already taken", ErrSlotConflict)
	case errors.Is(err, reservation.ErrAlreadyCancelled):
		uc.logger.Warn("RescheduleBooking: booking uid=%s cancelled concurrently", uid)
		return ErrAlreadyCancelled
	case errors.Is(err, reservation.ErrReservationNotFound):
		return ErrBookingNotFound
	case reservation.IsSerializationFailure(err):
		uc.logger.Warn("RescheduleBooking: serialization failure for uid=%s, concurrent writer won", uid)
		return fmt.Errorf("%w: concurrent booking won", ErrSlotConflict)
	default:
		uc.logger.Error("RescheduleBooking: mutation failed for uid=%s: %v", uid, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
