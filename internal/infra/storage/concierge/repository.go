package concierge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const table = "concierges"

var columns = []string{"code", "name", "email", "phone", "active"}

// Repository репозиторий консьержей
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List all concierges, inactive included
func (r *Repository) List(ctx context.Context) ([]*domain.Concierge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).From(table).OrderBy("code ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.Concierge, 0)
	for rows.Next() {
		c, err := scanConcierge(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return list, nil
}

// GetByCode получает консьержа по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Concierge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).From(table).Where(squirrel.Eq{"code": code}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanConcierge(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConciergeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan concierge: %v", ErrScanRow, err)
	}
	return c, nil
}

// Create inserts an active concierge under the next C-00001 style code
func (r *Repository) Create(ctx context.Context, c *domain.Concierge) (*domain.Concierge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	seqQuery, seqArgs, err := psqlbuilder.Select().Column("nextval('concierge_seq')").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build sequence query: %v", ErrBuildQuery, err)
	}
	var seq int64
	if err := executor.QueryRowContext(ctx, seqQuery, seqArgs...).Scan(&seq); err != nil {
		return nil, fmt.Errorf("%w: Create - scan sequence: %v", ErrScanRow, err)
	}

	created := *c
	created.Code = domain.FormatConciergeCode(seq)
	created.Active = true

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(created.Code, created.Name, created.Email, created.Phone, created.Active).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return &created, nil
}

// Update overwrites the mutable columns of c
func (r *Repository) Update(ctx context.Context, c *domain.Concierge) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("active", c.Active).
		Where(squirrel.Eq{"code": c.Code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConciergeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConcierge(row rowScanner) (*domain.Concierge, error) {
	var c domain.Concierge
	if err := row.Scan(&c.Code, &c.Name, &c.Email, &c.Phone, &c.Active); err != nil {
		return nil, err
	}
	return &c, nil
}
