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
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/repository"
)

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	dbx := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: dbx, Write: dbx}, mock
}

func TestRepairRepository_Chain(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("request references the repair inserted in the same transaction", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectPrepare(`INSERT INTO room_repairs \(company_id, hotel_id, room_number, repair_date\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id`).
			ExpectQuery().
			WithArgs(int64(3), int64(1), int64(101), date).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectPrepare(`INSERT INTO room_repair_requests \(manager_id, repair_id\) VALUES \(\$1, \$2\) RETURNING id`).
			ExpectQuery().
			WithArgs(int64(7), int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectCommit()

		var requestID int64

		err := postgres.NewTransactor(conn).WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
			repairID, err := repo.InsertRepairTx(context.Background(), tx, model.Repair{CompanyID: 3, HotelID: 1, RoomNumber: 101, RepairDate: date})
			if err != nil {
				return err
			}

			requestID, err = repo.InsertRequestTx(context.Background(), tx, model.Request{ManagerID: 7, RepairID: repairID})

			return err
		})

		require.NoError(t, err)
		assert.Equal(t, int64(9), requestID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed request insert rolls back the repair", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectPrepare(`INSERT INTO room_repairs`).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectPrepare(`INSERT INTO room_repair_requests`).
			ExpectQuery().
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := postgres.NewTransactor(conn).WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
			repairID, err := repo.InsertRepairTx(context.Background(), tx, model.Repair{CompanyID: 3, HotelID: 1, RoomNumber: 101, RepairDate: date})
			if err != nil {
				return err
			}

			_, err = repo.InsertRequestTx(context.Background(), tx, model.Request{ManagerID: 7, RepairID: repairID})

			return err
		})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepairRepository_History(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(`WHERE req.manager_id = \$1 ORDER BY rep.repair_date DESC`).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "company_id", "hotel_id", "room_number", "repair_date"}).
			AddRow(9, 3, 1, 101, date))

	entries, err := repo.History(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []model.HistoryEntry{{RequestID: 9, CompanyID: 3, HotelID: 1, RoomNumber: 101, RepairDate: date}}, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairRepository_CompanyExist(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectPrepare(`SELECT EXISTS\(SELECT 1 FROM maintenance_companies WHERE \(maintenance_companies.id = \$1\) ?\)`).
		ExpectQuery().
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exist, err := repo.CompanyExist(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}
