package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/domain"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/dbmetrics"
	"github.com/searchwebservices/prestigeyachtsalliance-sub001/pkg/psqlbuilder"
)

// Repository insert-only репозиторий аудита мутаций бронирований
// Записи неизменяемы: только добавление и чтение истории
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудита
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись аудита
// Вызывается внутри транзакции мутации: след и сама мутация
// фиксируются атомарно
func (r *Repository) Append(ctx context.Context, rec *domain.AuditRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload := rec.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	query, args, err := psqlbuilder.Insert("booking_audit").
		Columns("booking_uid", "action", "actor", "payload").
		Values(rec.BookingUID, rec.Action, rec.Actor, []byte(payload)).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time
	return nil
}

// ListByBookingUIDs возвращает историю мутаций бронирования по всем
// его идентификаторам
//
// Записи пишутся под UID, актуальным на момент мутации, а перенос
// ротирует UID. Полная история собирается запросом по текущему UID
// вместе со всеми prior_uids.
func (r *Repository) ListByBookingUIDs(ctx context.Context, uids []string) ([]*domain.AuditRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_uid", "action", "actor", "payload", "created_at").
		From("booking_audit").
		Where(squirrel.Eq{"booking_uid": uids}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingUIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingUIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.AuditRecord, 0)
	for rows.Next() {
		var rec domain.AuditRecord
		var createdAt sql.NullTime
		var payload []byte

		if err := rows.Scan(&rec.ID, &rec.BookingUID, &rec.Action, &rec.Actor, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBookingUIDs - scan row: %v", ErrScanRow, err)
		}

		rec.Payload = payload
		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBookingUIDs - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
