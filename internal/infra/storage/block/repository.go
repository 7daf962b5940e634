package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/psqlbuilder"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

var columns = []string{"id", "provider_id", "block_date", "block_time", "reason", "created_at"}

// Repository репозиторий исключений из расписания
// block_date хранится как DATE: при чтении день переносится в зону календаря сервиса
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &Repository{db: db, loc: loc}
}

// Create сохраняет блокировку
func (r *Repository) Create(ctx context.Context, block *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("blocked_intervals").
		Columns("id", "provider_id", "block_date", "block_time", "reason").
		Values(block.ID, block.ProviderID, r.formatDate(block.Date), block.Time, block.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return block, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("blocked_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	block, err := r.scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %w", ErrScanRow, err)
	}

	return block, nil
}

// ListByProvider возвращает блокировки провайдера, опционально только на указанную дату
func (r *Repository) ListByProvider(ctx context.Context, providerID uuid.UUID, date *time.Time) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("blocked_intervals").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("block_date ASC", "block_time ASC NULLS FIRST")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"block_date": r.formatDate(*date)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedInterval, 0)
	for rows.Next() {
		block, err := r.scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProvider - scan block: %w", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows error: %w", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func (r *Repository) formatDate(date time.Time) string {
	return date.In(r.loc).Format(domain.DateFormat)
}

func (r *Repository) scanBlock(row rowScanner) (*domain.BlockedInterval, error) {
	var (
		block     domain.BlockedInterval
		blockDate time.Time
		blockTime sql.NullString
	)

	if err := row.Scan(&block.ID, &block.ProviderID, &blockDate, &blockTime, &block.Reason, &block.CreatedAt); err != nil {
		return nil, err
	}

	// DATE приходит полуночью UTC, берём только календарный день
	block.Date = time.Date(blockDate.Year(), blockDate.Month(), blockDate.Day(), 0, 0, 0, 0, r.loc)

	if blockTime.Valid {
		t, err := types.NewTimeStringFromString(blockTime.String)
		if err != nil {
			return nil, err
		}
		block.Time = &t
	}

	return &block, nil
}
