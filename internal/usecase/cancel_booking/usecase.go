package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
)

// UseCase use case отмены бронирования
//
// Отмена идемпотентна: повторный запрос на уже отмененное бронирование
// успешен и не пишет ни новую отмену, ни запись аудита. Проигрыш гонки
// двух отмен тоже трактуется как успех.
type UseCase struct {
	reservationRepo ReservationRepository
	auditRepo       AuditRepository
	identityClient  IdentityServiceClient
	txManager       TxManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	auditRepo AuditRepository,
	identityClient IdentityServiceClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		auditRepo:       auditRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: uid=%s, actor=%s", req.BookingUID, req.ActorEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	res, err := uc.reservationRepo.GetByUID(ctx, req.BookingUID)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			uc.logger.Warn("CancelBooking: booking uid=%s not found", req.BookingUID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking uid=%s: %v", req.BookingUID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrStoreUnavailable, err)
	}

	// 3. Отменить может владелец или администратор
	if err := uc.authorize(ctx, res, req.ActorEmail); err != nil {
		return nil, err
	}

	// 4. Повторная отмена идемпотентна
	if res.IsCancelled() {
		uc.logger.Info("CancelBooking: booking uid=%s already cancelled", req.BookingUID)
		return &Response{Reservation: res, AlreadyCancelled: true}, nil
	}

	// 5. Отмена и след аудита фиксируются атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.reservationRepo.Cancel(txCtx, req.BookingUID, req.Reason); err != nil {
			return err
		}

		return uc.auditRepo.Append(txCtx, uc.auditRecord(res, req))
	})

	if err != nil {
		// Конкурентная отмена выиграла гонку, результат тот же
		if errors.Is(err, reservation.ErrAlreadyCancelled) {
			uc.logger.Info("CancelBooking: booking uid=%s cancelled concurrently", req.BookingUID)
			return &Response{Reservation: res, AlreadyCancelled: true}, nil
		}
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to cancel booking uid=%s: %v", req.BookingUID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	res.Status = domain.StatusCancelled
	res.CancellationReason = &req.Reason

	uc.logger.Info("CancelBooking: booking uid=%s cancelled", req.BookingUID)

	return &Response{Reservation: res}, nil
}

// authorize пропускает владельца без похода в IdentityService
func (uc *UseCase) authorize(ctx context.Context, res *domain.Reservation, actor string) error {
	if res.IsOwnedBy(actor) {
		return nil
	}

	isAdmin, err := uc.identityClient.IsAdmin(ctx, actor)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to check admin role for %s: %v", actor, err)
		return fmt.Errorf("%w: failed to check admin role: %v", ErrInternal, err)
	}
	if !isAdmin {
		uc.logger.Warn("CancelBooking: actor=%s is neither owner nor admin for uid=%s", actor, res.BookingUID)
		return ErrForbidden
	}

	return nil
}

func (uc *UseCase) auditRecord(res *domain.Reservation, req *Request) *domain.AuditRecord {
	payload, _ := json.Marshal(map[string]interface{}{
		"reason":   req.Reason,
		"start_at": res.StartAt,
		"end_at":   res.EndAt,
	})

	return &domain.AuditRecord{
		BookingUID: res.BookingUID,
		Action:     domain.AuditActionCancel,
		Actor:      req.ActorEmail,
		Payload:    payload,
	}
}
