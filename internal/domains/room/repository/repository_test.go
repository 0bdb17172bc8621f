package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
)

func newRepository(t *testing.T) (repository.Room, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	dbx := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: dbx, Write: dbx}, mocks.NewOtel()), mock
}

func TestRoomRepository_Occupancy(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"hotel_id", "room_number", "price", "image_url"}

	t.Run("available rooms", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(`NOT EXISTS`).
			ExpectQuery().
			WithArgs(int64(1), date).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, 102, 90, "b.png").
				AddRow(1, 103, 120, "c.png"))

		rooms, err := repo.Available(context.Background(), 1, date)

		require.NoError(t, err)
		assert.Equal(t, []model.Room{
			{HotelID: 1, RoomNumber: 102, Price: 90, ImageURL: "b.png"},
			{HotelID: 1, RoomNumber: 103, Price: 120, ImageURL: "c.png"},
		}, rooms)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booked rooms of a hotel without bookings", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(`AND EXISTS`).
			ExpectQuery().
			WithArgs(int64(1), date).
			WillReturnRows(sqlmock.NewRows(columns))

		rooms, err := repo.Booked(context.Background(), 1, date)

		require.NoError(t, err)
		assert.Empty(t, rooms)
		assert.NotNil(t, rooms)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store failure", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(`NOT EXISTS`).
			ExpectQuery().
			WillReturnError(errors.New("connection reset"))

		rooms, err := repo.Available(context.Background(), 1, date)

		require.Error(t, err)
		assert.Nil(t, rooms)
	})
}

func TestRoomRepository_RecentUpdates(t *testing.T) {
	repo, mock := newRepository(t)

	updatedOn := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(`FROM room_updates_log .*WHERE \(room_updates_log\.manager_id = \$1\) .*ORDER BY updated_on DESC LIMIT \$2`).
		ExpectQuery().
		WithArgs(int64(7), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "hotel_id", "room_number", "updated_on"}).
			AddRow(3, 7, 1, 101, updatedOn))

	entries, err := repo.RecentUpdates(context.Background(), 7, 5)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(101), entries[0].RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_InsertUpdateLogTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	dbx := sqlx.NewDb(db, "postgres")
	repo := repository.New(&postgres.Connection{Read: dbx, Write: dbx}, mocks.NewOtel())

	updatedOn := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO room_updates_log \(manager_id, hotel_id, room_number, updated_on\)`).
		WithArgs(int64(7), int64(1), int64(101), updatedOn).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := dbx.Beginx()
	require.NoError(t, err)

	err = repo.InsertUpdateLogTx(context.Background(), tx, model.UpdateLog{ManagerID: 7, HotelID: 1, RoomNumber: 101, UpdatedOn: updatedOn})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}
