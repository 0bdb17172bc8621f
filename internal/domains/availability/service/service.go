package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/availability/model/dto"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	roomDto "hotel/internal/domains/room/model/dto"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

// Availability answers which rooms are free on a date. Both listings are
// ordered by room number and together cover every room of the hotel.
type Availability interface {
	IsRoomFree(ctx context.Context, hotelID, roomNumber int64, date time.Time) (bool, error)
	ListAvailableRooms(ctx context.Context, hotelID int64, date time.Time) ([]roomDto.RoomResponse, error)
	ListBookedRooms(ctx context.Context, hotelID int64, date time.Time) ([]roomDto.RoomResponse, error)
	Rooms(ctx context.Context, req dto.RoomsRequest) (dto.RoomsResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, otel otel.Otel) Availability {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) IsRoomFree(ctx context.Context, hotelID, roomNumber int64, date time.Time) (free bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomFree")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booked, err := s.bookingRepo.Exist(ctx, bookingModel.ByKey(hotelID, roomNumber, date))
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Int64("roomNumber", roomNumber).Msg("failed to check room booking")

		return false, fmt.Errorf("failed to check room booking: %w", err)
	}

	return !booked, nil
}

func (s *serviceImpl) ListAvailableRooms(ctx context.Context, hotelID int64, date time.Time) (res []roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.Available(ctx, hotelID, date)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to list available rooms")

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return roomDto.FromModels(rooms), nil
}

func (s *serviceImpl) ListBookedRooms(ctx context.Context, hotelID int64, date time.Time) (res []roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookedRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.Booked(ctx, hotelID, date)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to list booked rooms")

		return nil, fmt.Errorf("failed to list booked rooms: %w", err)
	}

	return roomDto.FromModels(rooms), nil
}

// Rooms lists both sides of the occupancy split for a date given as text.
func (s *serviceImpl) Rooms(ctx context.Context, req dto.RoomsRequest) (res dto.RoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	res.HotelID = req.HotelID
	res.Date = timezone.FormatDate(date)

	res.Available, err = s.ListAvailableRooms(ctx, req.HotelID, date)
	if err != nil {
		return res, err
	}

	res.Booked, err = s.ListBookedRooms(ctx, req.HotelID, date)
	if err != nil {
		return res, err
	}

	return res, nil
}
