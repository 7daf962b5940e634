package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/psqlbuilder"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// Repository хранит недельное расписание провайдеров
// Настроенное расписание всегда содержит 7 строк: закрытые дни хранятся с пустым массивом слотов,
// чтобы "все дни закрыты" отличалось от "расписание не настраивалось"
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProvider возвращает открытые дни провайдера в порядке недели
// Если расписание не настраивалось, возвращает ErrAvailabilityNotFound
func (r *Repository) GetByProvider(ctx context.Context, providerID uuid.UUID) (domain.WeeklyPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_name", "time_slots").
		From("availability_days").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	pattern := make(domain.WeeklyPattern, 0, len(domain.WeekDays))
	found := false
	for rows.Next() {
		found = true

		var (
			dayName string
			slots   []string
		)
		if err := rows.Scan(&dayName, pq.Array(&slots)); err != nil {
			return nil, fmt.Errorf("%w: GetByProvider - scan day: %w", ErrScanRow, err)
		}
		if len(slots) == 0 {
			continue
		}

		day := domain.AvailabilityDay{
			DayName:   domain.DayName(dayName),
			TimeSlots: make([]types.TimeString, len(slots)),
		}
		for i, s := range slots {
			day.TimeSlots[i] = types.TimeString(s)
		}
		pattern = append(pattern, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - rows error: %w", ErrScanRow, err)
	}

	if !found {
		return nil, ErrAvailabilityNotFound
	}

	return pattern, nil
}

// Replace полностью заменяет расписание провайдера
// Должен вызываться в транзакции: удаление и вставка не должны быть видны по отдельности
func (r *Repository) Replace(ctx context.Context, providerID uuid.UUID, pattern domain.WeeklyPattern) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_days").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %w", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("availability_days").
		Columns("provider_id", "day_name", "time_slots", "position")

	for position, dayName := range domain.WeekDays {
		slots := make([]string, 0)
		if day, ok := pattern.Day(dayName); ok {
			for _, s := range day.TimeSlots {
				slots = append(slots, s.String())
			}
		}
		insertBuilder = insertBuilder.Values(providerID, string(dayName), pq.Array(slots), position)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
