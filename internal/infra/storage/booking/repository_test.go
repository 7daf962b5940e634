package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now().UTC()

	b := &domain.Booking{
		RequesterID: uuid.New(),
		ProviderID:  uuid.New(),
		SubjectID:   ptr.Ptr(uuid.New()),
		ScheduledAt: now.Add(24 * time.Hour),
		Status:      domain.StatusPendingConfirmation,
		Note:        ptr.Ptr("Calle 10 #5-20"),
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusPendingConfirmation})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()
	requester := uuid.New()
	provider := uuid.New()
	at := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(bookingRows().AddRow(
			id.String(), requester.String(), provider.String(), nil,
			at, "blocked", nil, at, at,
		))

	b, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, provider, b.ProviderID)
	assert.Nil(t, b.SubjectID)
	assert.Nil(t, b.Note)
	assert.Equal(t, domain.StatusBlocked, b.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List_SingleDayInTransactionLocksRows(t *testing.T) {
	repo, db, mock := newRepo(t)
	provider := uuid.New()
	from := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	subject := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE provider_id = \$1 AND scheduled_at >= \$2 AND scheduled_at < \$3 AND status IN \(\$4,\$5,\$6\) ORDER BY scheduled_at ASC FOR UPDATE`).
		WillReturnRows(bookingRows().AddRow(
			uuid.NewString(), uuid.NewString(), provider.String(), subject.String(),
			from.Add(4*time.Hour), "confirmed", "nota", from, from,
		))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	bookings, err := repo.List(ctx, domain.BookingsFilter{
		ProviderID:    &provider,
		From:          &from,
		To:            &to,
		OnlyOccupying: true,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Len(t, bookings, 1)
	assert.Equal(t, subject, *bookings[0].SubjectID)
	assert.Equal(t, "nota", *bookings[0].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ByRequesterAndStatus(t *testing.T) {
	repo, _, mock := newRepo(t)
	requester := uuid.New()
	status := domain.StatusCancelled

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE requester_id = \$1 AND status = \$2 ORDER BY scheduled_at DESC LIMIT 20 OFFSET 0`).
		WillReturnRows(bookingRows())

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		RequesterID: &requester,
		Status:      &status,
		Limit:       20,
	})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("confirmed", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed))

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_DeleteBlocked(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1 AND status = \$2`).
		WithArgs(id, "blocked").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteBlocked(context.Background(), id))

	mock.ExpectExec("DELETE FROM bookings").WillReturnError(errors.New("connection reset"))
	err := repo.DeleteBlocked(context.Background(), id)
	assert.ErrorIs(t, err, ErrExecQuery)
}
