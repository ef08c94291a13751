package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/dbmetrics"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
)

var reservationColumns = []string{
	"id",
	"booking_uid",
	"prior_uids",
	"yacht_id",
	"start_at",
	"end_at",
	"guard_start",
	"guard_end",
	"status",
	"source",
	"attendee_email",
	"attendee_name",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями чартеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Вставка условная: exclusion constraint на guard-интервал
// гарантирует, что конкурентная запись на пересекающийся интервал
// упадет с ErrIntervalTaken, а не перезапишет чужое бронирование.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"booking_uid",
			"prior_uids",
			"yacht_id",
			"start_at",
			"end_at",
			"guard_start",
			"guard_end",
			"status",
			"source",
			"attendee_email",
			"attendee_name",
			"notes",
		).
		Values(
			res.BookingUID,
			pq.Array(res.PriorUIDs),
			res.YachtID,
			res.StartAt,
			res.EndAt,
			res.GuardStart,
			res.GuardEnd,
			res.Status,
			res.Source,
			res.AttendeeEmail,
			res.AttendeeName,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrIntervalTaken
		}
		// Срыв сериализации оставляем доступным через errors.As,
		// иначе IsSerializationFailure его не распознает
		if IsSerializationFailure(err) {
			return nil, fmt.Errorf("Create - serialization failure: %w", err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByUID получает бронирование по его текущему публичному идентификатору
func (r *Repository) GetByUID(ctx context.Context, uid string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"booking_uid": uid}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetForYachtWithFilter получает бронирования яхты, чьи guard-
// интервалы пересекают [From, To)
//
// Внутри транзакции с заданным диапазоном добавляет FOR UPDATE:
// мутации читают день с блокировкой, чтобы проверка конфликта и
// запись были одной атомарной единицей.
func (r *Repository) GetForYachtWithFilter(ctx context.Context, filter domain.YachtBookingsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"yacht_id": filter.YachtID})

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"guard_end": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"guard_start": *filter.To})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusBooked})
	}

	if filter.ExcludeUID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"booking_uid": filter.ExcludeUID})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC")

	// Мутации перечитывают диапазон внутри транзакции с блокировкой
	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForYachtWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		// 40001 может случиться и на чтении внутри SERIALIZABLE
		// транзакции, не только на commit
		if IsSerializationFailure(err) {
			return nil, fmt.Errorf("GetForYachtWithFilter - serialization failure: %w", err)
		}
		return nil, fmt.Errorf("%w: GetForYachtWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByAttendee получает бронирования участника по email
func (r *Repository) GetByAttendee(ctx context.Context, email string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"attendee_email": email}).
		OrderBy("start_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAttendee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAttendee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Reschedule переносит бронирование на новый интервал
// Назначает новый UID, старый дописывается в prior_uids.
// Обновляются только активные бронирования: перенос отмененного
// возвращает ErrAlreadyCancelled.
func (r *Repository) Reschedule(
	ctx context.Context,
	oldUID string,
	newUID string,
	startAt, endAt time.Time,
	guardStart, guardEnd time.Time,
) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("booking_uid", newUID).
		Set("prior_uids", squirrel.Expr("array_append(prior_uids, ?)", oldUID)).
		Set("start_at", startAt).
		Set("end_at", endAt).
		Set("guard_start", guardStart).
		Set("guard_end", guardEnd).
		Where(squirrel.Eq{
			"booking_uid": oldUID,
			"status":      domain.StatusBooked,
		}).
		Suffix("RETURNING " + joinColumns(reservationColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		// Либо UID неизвестен, либо бронирование уже отменено
		return nil, r.classifyMissing(ctx, oldUID)
	}
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrIntervalTaken
		}
		if IsSerializationFailure(err) {
			return nil, fmt.Errorf("Reschedule - serialization failure: %w", err)
		}
		return nil, fmt.Errorf("%w: Reschedule - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// Cancel отменяет бронирование с указанием причины
// Затрагивает только активные бронирования; для уже отмененного
// возвращает ErrAlreadyCancelled, что вызывающий код трактует как
// идемпотентный успех.
func (r *Repository) Cancel(ctx context.Context, uid string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"booking_uid": uid,
			"status":      domain.StatusBooked,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if IsSerializationFailure(err) {
			return fmt.Errorf("Cancel - serialization failure: %w", err)
		}
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.classifyMissing(ctx, uid)
	}

	return nil
}

// classifyMissing различает "не найдено" и "уже отменено" после
// обновления, не затронувшего ни одной строки
func (r *Repository) classifyMissing(ctx context.Context, uid string) error {
	existing, err := r.GetByUID(ctx, uid)
	if err != nil {
		return ErrReservationNotFound
	}
	if existing.IsCancelled() {
		return ErrAlreadyCancelled
	}
	return ErrReservationNotFound
}

// IsSerializationFailure проверяет, что ошибка вызвана срывом
// SERIALIZABLE транзакции (конкурентная запись выиграла)
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgExclusionViolation
	}
	return false
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.BookingUID,
		pq.Array(&res.PriorUIDs),
		&res.YachtID,
		&res.StartAt,
		&res.EndAt,
		&res.GuardStart,
		&res.GuardEnd,
		&res.Status,
		&res.Source,
		&res.AttendeeEmail,
		&res.AttendeeName,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
