package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	reservationRepo "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/infra/storage/reservation"
	fleetClient "github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/integrations/fleetservice"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/service/reservations/models"
)

// Service сервис чтения бронирований
// Мутации живут в usecase слое, здесь только выборки с проверкой прав
type Service struct {
	reservationRepo ReservationRepository
	auditRepo       AuditRepository
	fleetClient     FleetServiceClient
	identityClient  IdentityServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	auditRepo AuditRepository,
	fleetClient FleetServiceClient,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		auditRepo:       auditRepo,
		fleetClient:     fleetClient,
		identityClient:  identityClient,
		logger:          logger,
	}
}

// GetByUID получает бронирование по публичному идентификатору
// Пользователь видит только свое бронирование, администратор - любое
func (s *Service) GetByUID(ctx context.Context, uid string, actorEmail string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByUID: fetching booking uid=%s for actor=%s", uid, actorEmail)

	res, err := s.reservationRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByUID: booking uid=%s not found", uid)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByUID: repository error for booking uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: GetByUID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(ctx, res, actorEmail); err != nil {
		s.logger.Warn("GetByUID: access denied for actor=%s to booking uid=%s", actorEmail, uid)
		return nil, err
	}

	s.logger.Info("GetByUID: successfully fetched booking uid=%s", uid)
	return models.FromDomainReservation(res), nil
}

// GetAttendeeBookings получает историю бронирований участника
// Участник видит только свои бронирования, администратор - чьи угодно
func (s *Service) GetAttendeeBookings(ctx context.Context, email string, actorEmail string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetAttendeeBookings: fetching bookings for attendee=%s, actor=%s", email, actorEmail)

	if email == "" {
		return nil, fmt.Errorf("%w: attendee email is required", ErrInvalidInput)
	}

	if email != actorEmail {
		if err := s.requireAdmin(ctx, actorEmail); err != nil {
			s.logger.Warn("GetAttendeeBookings: access denied for actor=%s to attendee=%s", actorEmail, email)
			return nil, err
		}
	}

	reservations, err := s.reservationRepo.GetByAttendee(ctx, email)
	if err != nil {
		s.logger.Error("GetAttendeeBookings: repository error for attendee=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetAttendeeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAttendeeBookings: successfully fetched %d bookings for attendee=%s", len(reservations), email)
	return models.FromDomainReservationList(reservations), nil
}

// GetYachtBookings получает бронирования яхты за период
// Доступно только администраторам
func (s *Service) GetYachtBookings(ctx context.Context, req *models.GetYachtBookingsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetYachtBookings: fetching bookings for yacht=%s, actor=%s, includeCancelled=%v",
		req.YachtSlug, req.ActorEmail, req.IncludeCancelled)

	if req.YachtSlug == "" {
		return nil, fmt.Errorf("%w: yachtSlug is required", ErrInvalidInput)
	}

	if err := s.requireAdmin(ctx, req.ActorEmail); err != nil {
		s.logger.Warn("GetYachtBookings: access denied for actor=%s", req.ActorEmail)
		return nil, err
	}

	yacht, err := s.fleetClient.GetYacht(ctx, req.YachtSlug)
	if err != nil {
		if errors.Is(err, fleetClient.ErrYachtNotFound) {
			s.logger.Warn("GetYachtBookings: yacht slug=%s not found", req.YachtSlug)
			return nil, ErrYachtNotFound
		}
		s.logger.Error("GetYachtBookings: failed to get yacht slug=%s: %v", req.YachtSlug, err)
		return nil, fmt.Errorf("%w: GetYachtBookings - fleet service error: %v", ErrInternal, err)
	}

	filter := domain.YachtBookingsFilter{
		YachtID:          yacht.ID,
		From:             req.From,
		To:               req.To,
		IncludeCancelled: req.IncludeCancelled,
	}

	reservations, err := s.reservationRepo.GetForYachtWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetYachtBookings: repository error for yacht=%s: %v", req.YachtSlug, err)
		return nil, fmt.Errorf("%w: GetYachtBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetYachtBookings: successfully fetched %d bookings for yacht=%s", len(reservations), req.YachtSlug)
	return models.FromDomainReservationList(reservations), nil
}

// GetBookingAudit получает историю мутаций бронирования
// Доступно только администраторам
func (s *Service) GetBookingAudit(ctx context.Context, uid string, actorEmail string) (*models.AuditListResponse, error) {
	s.logger.Info("GetBookingAudit: fetching audit trail for booking uid=%s, actor=%s", uid, actorEmail)

	if err := s.requireAdmin(ctx, actorEmail); err != nil {
		s.logger.Warn("GetBookingAudit: access denied for actor=%s", actorEmail)
		return nil, err
	}

	// Убеждаемся, что бронирование существует: пустая история
	// для несуществующего UID выглядела бы как успех
	res, err := s.reservationRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetBookingAudit: booking uid=%s not found", uid)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBookingAudit: repository error for booking uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: GetBookingAudit - repository error: %v", ErrInternal, err)
	}

	// Перенос ротирует UID, записи аудита остаются под старыми.
	// Историю запрашиваем по всем идентификаторам бронирования.
	uids := make([]string, 0, len(res.PriorUIDs)+1)
	uids = append(uids, res.PriorUIDs...)
	uids = append(uids, res.BookingUID)

	records, err := s.auditRepo.ListByBookingUIDs(ctx, uids)
	if err != nil {
		s.logger.Error("GetBookingAudit: audit repository error for booking uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: GetBookingAudit - audit repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookingAudit: successfully fetched %d audit records for booking uid=%s", len(records), uid)
	return models.FromDomainAuditRecords(records), nil
}

// checkReadAccess пропускает владельца без похода в IdentityService
func (s *Service) checkReadAccess(ctx context.Context, res *domain.Reservation, actorEmail string) error {
	if res.IsOwnedBy(actorEmail) {
		return nil
	}
	return s.requireAdmin(ctx, actorEmail)
}

func (s *Service) requireAdmin(ctx context.Context, actorEmail string) error {
	isAdmin, err := s.identityClient.IsAdmin(ctx, actorEmail)
	if err != nil {
		s.logger.Error("requireAdmin: failed to check admin role for %s: %v", actorEmail, err)
		return fmt.Errorf("%w: failed to check admin role: %v", ErrInternal, err)
	}
	if !isAdmin {
		return ErrAccessDenied
	}
	return nil
}
