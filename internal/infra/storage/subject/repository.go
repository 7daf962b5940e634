package subject

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/psqlbuilder"
)

// Repository читает услуги и занятия провайдеров
// Каталог ведётся другим сервисом, здесь только чтение
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу/занятие по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"kind",
		"title",
		"location_type",
		"created_at",
		"updated_at",
	).
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var s domain.Subject
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ProviderID,
		&s.Kind,
		&s.Title,
		&s.LocationType,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan subject: %w", ErrScanRow, err)
	}

	return &s, nil
}
