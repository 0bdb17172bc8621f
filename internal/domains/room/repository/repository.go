package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	queryAvailableRooms = `SELECT r.hotel_id, r.room_number, r.price, r.image_url
FROM rooms r
WHERE r.hotel_id = :hotel_id
AND NOT EXISTS (
	SELECT 1 FROM room_bookings b
	WHERE b.hotel_id = r.hotel_id AND b.room_number = r.room_number AND b.booking_date = :booking_date
)
ORDER BY r.room_number`

	queryBookedRooms = `SELECT r.hotel_id, r.room_number, r.price, r.image_url
FROM rooms r
WHERE r.hotel_id = :hotel_id
AND EXISTS (
	SELECT 1 FROM room_bookings b
	WHERE b.hotel_id = r.hotel_id AND b.room_number = r.room_number AND b.booking_date = :booking_date
)
ORDER BY r.room_number`
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Available(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error)
	Booked(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error)
	InsertUpdateLogTx(ctx context.Context, sqltx *sqlx.Tx, entry model.UpdateLog) error
	RecentUpdates(ctx context.Context, managerID int64, limit int) ([]model.UpdateLog, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	logs gRepo.Repository[model.UpdateLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldHotelID, db, otel),
		logs:       gRepo.NewRepository[model.UpdateLog](model.LogEntityName, model.LogTableName, model.LogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Available lists the rooms of hotelID with no booking on date, by room number.
func (r *repositoryImpl) Available(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error) {
	return r.byOccupancy(ctx, "Available", queryAvailableRooms, hotelID, date)
}

// Booked lists the rooms of hotelID booked on date, by room number.
func (r *repositoryImpl) Booked(ctx context.Context, hotelID int64, date time.Time) ([]model.Room, error) {
	return r.byOccupancy(ctx, "Booked", queryBookedRooms, hotelID, date)
}

func (r *repositoryImpl) byOccupancy(ctx context.Context, name, query string, hotelID int64, date time.Time) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
	defer scope.End()

	rooms := []model.Room{}

	err := r.Query(ctx, &rooms, query, map[string]any{
		"hotel_id":     hotelID,
		"booking_date": date,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rooms, nil
}

func (r *repositoryImpl) InsertUpdateLogTx(ctx context.Context, sqltx *sqlx.Tx, entry model.UpdateLog) error {
	return r.logs.InsertTx(ctx, sqltx, entry) //nolint:wrapcheck
}

// RecentUpdates returns the newest log entries written by managerID.
func (r *repositoryImpl) RecentUpdates(ctx context.Context, managerID int64, limit int) ([]model.UpdateLog, error) {
	filter := shared.FilterByID(managerID, model.LogFieldManagerID, model.LogTableName)

	return r.logs.GetAll(ctx, gDto.Top(limit, model.LogFieldUpdatedOn), filter) //nolint:wrapcheck
}
