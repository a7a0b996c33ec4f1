package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const table = "users"

var columns = []string{
	"email",
	"name",
	"department",
	"role",
	"priority",
	"salon_whitelist",
	"status",
	"extension",
	"tenant_id",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail case-insensitive lookup
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": normalizeEmail(email)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan user: %v", ErrScanRow, err)
	}
	return u, nil
}

// List all users ordered by email
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).From(table).OrderBy("email ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return users, nil
}

// Upsert inserts the user or overwrites every column of the existing row
func (r *Repository) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			normalizeEmail(u.Email),
			u.Name,
			u.Department,
			u.Role,
			u.Priority,
			domain.JoinSalonWhitelist(u.SalonWhitelist),
			u.Status,
			u.Extension,
			domain.NormalizeTenantID(u.TenantID),
		).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			department = EXCLUDED.department,
			role = EXCLUDED.role,
			priority = EXCLUDED.priority,
			salon_whitelist = EXCLUDED.salon_whitelist,
			status = EXCLUDED.status,
			extension = EXCLUDED.extension,
			tenant_id = EXCLUDED.tenant_id
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return saved, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var whitelist string
	err := row.Scan(
		&u.Email,
		&u.Name,
		&u.Department,
		&u.Role,
		&u.Priority,
		&whitelist,
		&u.Status,
		&u.Extension,
		&u.TenantID,
	)
	if err != nil {
		return nil, err
	}
	u.SalonWhitelist = domain.ParseSalonWhitelist(whitelist)
	u.TenantID = domain.NormalizeTenantID(u.TenantID)
	u.Exists = true
	return &u, nil
}
