package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	access "hotel/internal/domains/access/service"
	availability "hotel/internal/domains/availability/service"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Book(ctx context.Context, req dto.BookRequest) (dto.BookingResponse, error)
	RecentBookings(ctx context.Context) ([]dto.CustomerBookingResponse, error)
	HotelBookingHistory(ctx context.Context, req dto.HistoryRequest) ([]dto.HotelBookingResponse, error)
	RegularCustomers(ctx context.Context, hotelID int64) ([]dto.RegularCustomerResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	availability availability.Availability
	access       access.Access
	otel         otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, availability availability.Availability, access access.Access, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		availability: availability,
		access:       access,
		otel:         otel,
	}
}

// Book reserves a room for the session user. The unique constraint on
// (hotel, room, date) is the final word on conflicts; the availability check
// only gives the common case a clearer message. When the price read fails the
// booking stays and the response still carries its ID.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, ok := session.UserID(ctx)
	if !ok {
		return res, failure.LoginRequiredError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	roomFilter := roomModel.ByKey(req.HotelID, req.RoomNumber)

	exist, err := s.roomRepo.Exist(ctx, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	free, err := s.availability.IsRoomFree(ctx, req.HotelID, req.RoomNumber, date)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !free {
		return res, conflict(req, date) //nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningID(ctx, req.ToModel(customerID, date))
	switch {
	case gRepo.IsUniqueViolation(err):
		log.Warn().Err(err).Int64("hotelID", req.HotelID).Int64("roomNumber", req.RoomNumber).Msg("room booked concurrently")

		return res, conflict(req, date) //nolint:wrapcheck
	case gRepo.IsForeignKeyViolation(err):
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res = dto.BookingResponse{
		ID:         id,
		HotelID:    req.HotelID,
		RoomNumber: req.RoomNumber,
		Date:       timezone.FormatDate(date),
	}

	room, err := s.roomRepo.Get(ctx, roomFilter, roomModel.FieldPrice)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", id).Msg("failed to read room price")

		return res, fmt.Errorf("booking %d created but failed to read room price: %w", id, err)
	}

	res.Price = room.Price

	return res, nil
}

func conflict(req dto.BookRequest, date time.Time) error {
	return failure.Conflict(fmt.Sprintf("room %d at hotel %d is already booked on %s", req.RoomNumber, req.HotelID, timezone.FormatDate(date)))
}

// RecentBookings returns the newest bookings of the session user.
func (s *serviceImpl) RecentBookings(ctx context.Context) (res []dto.CustomerBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, ok := session.UserID(ctx)
	if !ok {
		return nil, failure.LoginRequiredError
	}

	bookings, err := s.repo.RecentByCustomer(ctx, customerID, constant.ReportLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res = make([]dto.CustomerBookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res, nil
}

func (s *serviceImpl) HotelBookingHistory(ctx context.Context, req dto.HistoryRequest) (res []dto.HotelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelBookingHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	managerID, err := s.access.EnsureManager(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err //nolint:wrapcheck
	}

	start, err := timezone.ParseDate(req.Start)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	end, err := timezone.ParseDate(req.End)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	if end.Before(start) {
		return nil, failure.BadRequestFromString("end date must not be before start date") //nolint:wrapcheck
	}

	bookings, err := s.repo.HistoryByManager(ctx, managerID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return nil, fmt.Errorf("failed to get booking history: %w", err)
	}

	res = make([]dto.HotelBookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res, nil
}

// RegularCustomers ranks the top customers of a hotel the session manager runs.
func (s *serviceImpl) RegularCustomers(ctx context.Context, hotelID int64) (res []dto.RegularCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegularCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.access.EnsureHotelManager(ctx, hotelID); err != nil {
		return nil, err //nolint:wrapcheck
	}

	customers, err := s.repo.TopCustomers(ctx, hotelID, constant.ReportLimit)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to get regular customers")

		return nil, fmt.Errorf("failed to get regular customers: %w", err)
	}

	res = make([]dto.RegularCustomerResponse, len(customers))
	for i, customer := range customers {
		res[i].FromModel(customer)
	}

	return res, nil
}
