package repository_test

import (
	"context"
	"errors"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/shared"
	"hotel/shared/dto"
	"hotel/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	ID   int64  `db:"id"   readonly:"true"`
	Name string `db:"name"`
}

type testRoom struct {
	HotelID    int64  `db:"hotel_id"`
	RoomNumber int64  `db:"room_number"`
	Price      int64  `db:"price"`
	ImageURL   string `db:"image_url"`
}

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	dbx := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: dbx, Write: dbx}, mock
}

func TestInsertReturningID(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO users (name) VALUES ($1) RETURNING id")

	tests := []struct {
		name       string
		setupMock  func(mock sqlmock.Sqlmock)
		expectedID int64
		wantErr    bool
		unique     bool
	}{
		{
			name: "returns generated id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(query).
					ExpectQuery().
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
			},
			expectedID: 7,
		},
		{
			name: "unique violation is classifiable",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(query).
					ExpectQuery().
					WithArgs("alice").
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			unique:  true,
		},
		{
			name: "prepare fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(query).WillReturnError(errors.New("connection closed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			tt.setupMock(mock)

			repo := repository.NewRepository[testUser]("user", "users", "id", conn, mocks.NewOtel())

			id, err := repo.InsertReturningID(context.Background(), testUser{Name: "alice"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.unique, repository.IsUniqueViolation(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertReturningIDTx(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO users (name) VALUES ($1) RETURNING id")).
		ExpectQuery().
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	repo := repository.NewRepository[testUser]("user", "users", "id", conn, mocks.NewOtel())

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	id, err := repo.InsertReturningIDTx(context.Background(), tx, testUser{Name: "bob"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT rooms.hotel_id, rooms.room_number, rooms.price, rooms.image_url FROM rooms WHERE (rooms.hotel_id = $1 AND rooms.room_number = $2)")).
		ExpectQuery().
		WithArgs(int64(1), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "room_number", "price", "image_url"}).AddRow(1, 3, 120, "suite.png"))

	repo := repository.NewRepository[testRoom]("room", "rooms", "hotel_id", conn, mocks.NewOtel())

	room, err := repo.Get(context.Background(), shared.FilterAll("rooms", map[string]any{"hotel_id": int64(1), "room_number": int64(3)}))

	require.NoError(t, err)
	assert.Equal(t, testRoom{HotelID: 1, RoomNumber: 3, Price: 120, ImageURL: "suite.png"}, room)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NoRows(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectPrepare("SELECT (.+) FROM rooms").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "room_number", "price", "image_url"}))

	repo := repository.NewRepository[testRoom]("room", "rooms", "hotel_id", conn, mocks.NewOtel())

	room, err := repo.Get(context.Background(), shared.FilterByID(int64(99), "hotel_id", "rooms"))

	require.NoError(t, err)
	assert.Zero(t, room)
}

func TestGetAll(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT users.id, users.name FROM users ORDER BY name DESC LIMIT $1")).
		ExpectQuery().
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "bob").AddRow(1, "alice"))

	repo := repository.NewRepository[testUser]("user", "users", "id", conn, mocks.NewOtel())

	users, err := repo.GetAll(context.Background(), dto.Top(5, "name"), dto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, []testUser{{ID: 2, Name: "bob"}, {ID: 1, Name: "alice"}}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExist(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.FilterGroup
		exists   bool
		wantErr  bool
		withMock bool
	}{
		{
			name:     "exists",
			filter:   shared.FilterByID(int64(1), "id", "users"),
			exists:   true,
			withMock: true,
		},
		{
			name:     "missing",
			filter:   shared.FilterByID(int64(2), "id", "users"),
			exists:   false,
			withMock: true,
		},
		{
			name:    "filter is required",
			filter:  dto.FilterGroup{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)

			if tt.withMock {
				mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE (users.id = $1) )")).
					ExpectQuery().
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			}

			repo := repository.NewRepository[testUser]("user", "users", "id", conn, mocks.NewOtel())

			exists, err := repo.Exist(context.Background(), tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.exists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdate(t *testing.T) {
	filter := shared.FilterAll("rooms", map[string]any{"hotel_id": int64(1), "room_number": int64(3)})
	query := regexp.QuoteMeta("UPDATE rooms SET image_url = $1, price = $2 WHERE (rooms.hotel_id = $3 AND rooms.room_number = $4)")

	tests := []struct {
		name      string
		mod       map[string]any
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "updates in a stable column order",
			mod:  map[string]any{"price": int64(150), "image_url": "new.png"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs("new.png", int64(150), int64(1), int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "nothing matched",
			mod:  map[string]any{"price": int64(150), "image_url": "new.png"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: repository.ErrNoRowsAffected,
		},
		{
			name:      "no fields",
			mod:       map[string]any{},
			setupMock: func(_ sqlmock.Sqlmock) {},
			anyErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			tt.setupMock(mock)

			repo := repository.NewRepository[testRoom]("room", "rooms", "hotel_id", conn, mocks.NewOtel())

			err := repo.Update(context.Background(), tt.mod, filter)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuery(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT name FROM users WHERE id = $1")).
		ExpectQuery().
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("alice"))

	repo := repository.NewRepository[testUser]("user", "users", "id", conn, mocks.NewOtel())

	var names []string
	err := repo.Query(context.Background(), &names, "SELECT name FROM users WHERE id = :id", map[string]any{"id": int64(1)})

	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		unique bool
		fk     bool
	}{
		{name: "unique", err: &pq.Error{Code: "23505"}, unique: true},
		{name: "foreign key", err: &pq.Error{Code: "23503"}, fk: true},
		{name: "wrapped unique", err: errors.Join(errors.New("insert"), &pq.Error{Code: "23505"}), unique: true},
		{name: "other pq error", err: &pq.Error{Code: "42P01"}},
		{name: "plain error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, repository.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.fk, repository.IsForeignKeyViolation(tt.err))
		})
	}
}
