package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"time"
)

const (
	queryRecentByCustomer = `SELECT b.id, b.hotel_id, b.room_number, r.price, b.booking_date
FROM room_bookings b
JOIN rooms r ON r.hotel_id = b.hotel_id AND r.room_number = b.room_number
WHERE b.customer_id = :customer_id
ORDER BY b.booking_date DESC, b.id DESC
LIMIT :limit`

	queryHistoryByManager = `SELECT b.id, u.name AS customer_name, b.hotel_id, b.room_number, b.booking_date
FROM room_bookings b
JOIN hotels h ON h.id = b.hotel_id
JOIN users u ON u.id = b.customer_id
WHERE h.manager_user_id = :manager_id AND b.booking_date BETWEEN :start_date AND :end_date
ORDER BY b.booking_date DESC, b.id DESC`

	queryTopCustomers = `SELECT u.id AS customer_id, u.name, COUNT(b.id) AS bookings
FROM room_bookings b
JOIN users u ON u.id = b.customer_id
WHERE b.hotel_id = :hotel_id
GROUP BY u.id, u.name
ORDER BY bookings DESC, u.id
LIMIT :limit`
)

type Booking interface {
	InsertReturningID(ctx context.Context, model model.Booking) (int64, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]model.CustomerBooking, error)
	HistoryByManager(ctx context.Context, managerID int64, start, end time.Time) ([]model.HotelBooking, error)
	TopCustomers(ctx context.Context, hotelID int64, limit int) ([]model.RegularCustomer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RecentByCustomer returns the newest bookings of customerID with the price of each room.
func (r *repositoryImpl) RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]model.CustomerBooking, error) {
	res := []model.CustomerBooking{}

	err := r.Query(ctx, &res, queryRecentByCustomer, map[string]any{
		"customer_id": customerID,
		"limit":       limit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return res, nil
}

// HistoryByManager returns the bookings of every hotel managerID runs between
// start and end inclusive, newest first.
func (r *repositoryImpl) HistoryByManager(ctx context.Context, managerID int64, start, end time.Time) ([]model.HotelBooking, error) {
	res := []model.HotelBooking{}

	err := r.Query(ctx, &res, queryHistoryByManager, map[string]any{
		"manager_id": managerID,
		"start_date": start,
		"end_date":   end,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return res, nil
}

// TopCustomers ranks the customers of hotelID by booking count.
func (r *repositoryImpl) TopCustomers(ctx context.Context, hotelID int64, limit int) ([]model.RegularCustomer, error) {
	res := []model.RegularCustomer{}

	err := r.Query(ctx, &res, queryTopCustomers, map[string]any{
		"hotel_id": hotelID,
		"limit":    limit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return res, nil
}
