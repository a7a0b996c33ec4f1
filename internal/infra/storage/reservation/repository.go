package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const table = "reservations"

// columns persisted row layout; order matches scanReservation
var columns = []string{
	"id",
	"token",
	"status",
	"reservation_date",
	"start_time",
	"end_time",
	"salon_id",
	"salon_name",
	"capacity",
	"requester_email",
	"requester_name",
	"department",
	"extension",
	"event_name",
	"audience_type",
	"priority",
	"concierge_required",
	"concierge_notified",
	"created_at",
	"updated_at",
	"cancelled_by",
	"cancellation_reason",
	"concierge_code",
	"tenant_id",
}

// Repository репозиторий резерваций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextID reserves the next R-00001 style identifier
func (r *Repository) NextID(ctx context.Context) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().Column("nextval('reservation_seq')").ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: NextID - build query: %v", ErrBuildQuery, err)
	}

	var seq int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return "", fmt.Errorf("%w: NextID - scan sequence: %v", ErrScanRow, err)
	}
	return domain.FormatReservationID(seq), nil
}

// LockSalonDate serializes every decision on (salon, date) until the transaction ends
func (r *Repository) LockSalonDate(ctx context.Context, salonID string, date time.Time) error {
	return r.advisoryLock(ctx, "LockSalonDate", SalonDateLockKey(salonID, date))
}

// LockConciergeDate serializes concierge assignments on (concierge, date)
func (r *Repository) LockConciergeDate(ctx context.Context, code string, date time.Time) error {
	return r.advisoryLock(ctx, "LockConciergeDate", ConciergeDateLockKey(code, date))
}

// SalonDateLockKey advisory lock key of a salon day
func SalonDateLockKey(salonID string, date time.Time) string {
	return fmt.Sprintf("salon:%s:%s", salonID, date.Format(domain.DateFormat))
}

// ConciergeDateLockKey advisory lock key of a concierge day
func ConciergeDateLockKey(code string, date time.Time) string {
	return fmt.Sprintf("concierge:%s:%s", code, date.Format(domain.DateFormat))
}

func (r *Repository) advisoryLock(ctx context.Context, op, key string) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: %s - key %s", ErrLockOutsideTx, op, key)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtext(?))", key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - acquire %s: %v", ErrExecQuery, op, key, err)
	}
	return nil
}

// Create inserts a reservation; ID and Token must already be set
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"token",
			"status",
			"reservation_date",
			"start_time",
			"end_time",
			"salon_id",
			"salon_name",
			"capacity",
			"requester_email",
			"requester_name",
			"department",
			"extension",
			"event_name",
			"audience_type",
			"priority",
			"concierge_required",
			"concierge_notified",
			"cancelled_by",
			"cancellation_reason",
			"concierge_code",
			"tenant_id",
		).
		Values(
			res.ID,
			res.Token,
			res.Status,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.SalonID,
			res.SalonName,
			res.Capacity,
			res.RequesterEmail,
			res.RequesterName,
			res.Department,
			res.Extension,
			res.EventName,
			res.Audience,
			res.Priority,
			res.ConciergeRequired,
			res.ConciergeNotified,
			res.CancelledBy,
			res.CancellationReason,
			res.ConciergeCode,
			res.TenantID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByToken получает резервацию по токену отмены
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByToken", squirrel.Eq{"token": token})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table).Where(where)
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}
	return res, nil
}

// ListBySalonDate reservations of a salon day in the given states.
// Inside a transaction the rows are locked (FOR UPDATE).
func (r *Repository) ListBySalonDate(ctx context.Context, salonID string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.listForDay(ctx, "ListBySalonDate", squirrel.Eq{"salon_id": salonID}, date, statuses)
}

// ListByConciergeDate reservations of a concierge day in the given states
func (r *Repository) ListByConciergeDate(ctx context.Context, code string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.listForDay(ctx, "ListByConciergeDate", squirrel.Eq{"concierge_code": code}, date, statuses)
}

func (r *Repository) listForDay(ctx context.Context, op string, where squirrel.Eq, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		Where(squirrel.Eq{"reservation_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")
	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": statusStrings(statuses)})
	}
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// List reservations matching filter, newest date first
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"reservation_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"reservation_date": filter.To.Format(domain.DateFormat)})
	}
	if filter.TenantID != nil && domain.NormalizeTenantID(*filter.TenantID) != domain.SuperScope {
		builder = builder.Where(squirrel.Eq{"tenant_id": domain.NormalizeTenantID(*filter.TenantID)})
	}
	if filter.RequesterEmail != nil {
		builder = builder.Where(squirrel.Eq{"LOWER(requester_email)": *filter.RequesterEmail})
	}
	if filter.SalonID != nil {
		builder = builder.Where(squirrel.Eq{"salon_id": *filter.SalonID})
	}
	if filter.ConciergeCode != nil {
		builder = builder.Where(squirrel.Eq{"concierge_code": *filter.ConciergeCode})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}

	query, args, err := builder.OrderBy("reservation_date DESC", "start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Cancel moves a non-cancelled reservation to CANCELADA
func (r *Repository) Cancel(ctx context.Context, id, cancelledBy, reason string) error {
	return r.update(ctx, "Cancel", id,
		map[string]interface{}{
			"status":              domain.StatusCancelled,
			"cancelled_by":        cancelledBy,
			"cancellation_reason": reason,
		},
		squirrel.NotEq{"status": string(domain.StatusCancelled)},
	)
}

// Approve moves a pending reservation to APROBADA
func (r *Repository) Approve(ctx context.Context, id string) error {
	return r.update(ctx, "Approve", id,
		map[string]interface{}{"status": domain.StatusApproved},
		squirrel.Eq{"status": string(domain.StatusPending)},
	)
}

// AssignConcierge stores the concierge code on an approved reservation
func (r *Repository) AssignConcierge(ctx context.Context, id, code string) error {
	return r.update(ctx, "AssignConcierge", id,
		map[string]interface{}{"concierge_code": code},
		squirrel.Eq{"status": string(domain.StatusApproved)},
	)
}

// MarkConciergeNotified records that the concierge desk was alerted
func (r *Repository) MarkConciergeNotified(ctx context.Context, id string) error {
	return r.update(ctx, "MarkConciergeNotified", id,
		map[string]interface{}{"concierge_notified": true},
		nil,
	)
}

func (r *Repository) update(ctx context.Context, op, id string, set map[string]interface{}, guard squirrel.Sqlizer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if guard != nil {
		builder = builder.Where(guard)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		if guard == nil {
			return ErrReservationNotFound
		}
		return ErrStaleState
	}
	return nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation single deserialization point of the reservation row
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Token,
		&res.Status,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.SalonID,
		&res.SalonName,
		&res.Capacity,
		&res.RequesterEmail,
		&res.RequesterName,
		&res.Department,
		&res.Extension,
		&res.EventName,
		&res.Audience,
		&res.Priority,
		&res.ConciergeRequired,
		&res.ConciergeNotified,
		&createdAt,
		&updatedAt,
		&res.CancelledBy,
		&res.CancellationReason,
		&res.ConciergeCode,
		&res.TenantID,
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
