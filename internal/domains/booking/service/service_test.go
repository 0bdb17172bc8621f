package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	accessMocks "hotel/internal/domains/access/mocks"
	availabilityMocks "hotel/internal/domains/availability/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/session"
	"hotel/shared/failure"
)

const (
	customerID = int64(42)
	managerID  = int64(7)
)

var bookingDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo         *bookingMocks.MockBooking
	roomRepo     *roomMocks.MockRoom
	availability *availabilityMocks.MockAvailability
	access       *accessMocks.MockAccess
	svc          service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		access:       accessMocks.NewMockAccess(ctrl),
	}
	f.svc = service.New(f.repo, f.roomRepo, f.availability, f.access, mocks.NewOtel())

	return f
}

func storeError(code pq.ErrorCode) error {
	return fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: code})
}

func TestBookingService_Book(t *testing.T) {
	req := dto.BookRequest{HotelID: 1, RoomNumber: 101, Date: "2024-05-01"}
	roomFilter := roomModel.ByKey(1, 101)
	authed := session.WithUser(context.Background(), customerID)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.BookRequest
		setupMock func(f fixture)
		expected  dto.BookingResponse
		wantCode  int
	}{
		{
			name: "books a free room",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
						assert.Equal(t, customerID, booking.CustomerID)
						assert.Equal(t, "2024-05-01", booking.BookingDate.Format("2006-01-02"))

						return 11, nil
					})
				f.roomRepo.EXPECT().Get(gomock.Any(), roomFilter, roomModel.FieldPrice).Return(roomModel.Room{Price: 100}, nil)
			},
			expected: dto.BookingResponse{ID: 11, HotelID: 1, RoomNumber: 101, Date: "2024-05-01", Price: 100},
		},
		{
			name: "legacy date layout",
			ctx:  authed,
			req:  dto.BookRequest{HotelID: 1, RoomNumber: 101, Date: "05/01/2024"},
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				f.roomRepo.EXPECT().Get(gomock.Any(), roomFilter, roomModel.FieldPrice).Return(roomModel.Room{Price: 100}, nil)
			},
			expected: dto.BookingResponse{ID: 12, HotelID: 1, RoomNumber: 101, Date: "2024-05-01", Price: 100},
		},
		{
			name:      "requires a session",
			ctx:       context.Background(),
			req:       req,
			setupMock: func(fixture) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "malformed date",
			ctx:       authed,
			req:       dto.BookRequest{HotelID: 1, RoomNumber: 101, Date: "2024-13-45"},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "room already booked",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent booking wins the race",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), storeError("23505"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room removed before insert",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), storeError("23503"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "insert fails",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "price read fails after booking",
			ctx:  authed,
			req:  req,
			setupMock: func(f fixture) {
				f.roomRepo.EXPECT().Exist(gomock.Any(), roomFilter).Return(true, nil)
				f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), int64(101), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(13), nil)
				f.roomRepo.EXPECT().Get(gomock.Any(), roomFilter, roomModel.FieldPrice).Return(roomModel.Room{}, errors.New("timeout"))
			},
			expected: dto.BookingResponse{ID: 13, HotelID: 1, RoomNumber: 101, Date: "2024-05-01"},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Book(tt.ctx, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestBookingService_BookScenario(t *testing.T) {
	f := newFixture(t)
	ctx := session.WithUser(context.Background(), customerID)

	booked := map[int64]bool{}

	f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	f.availability.EXPECT().IsRoomFree(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, roomNumber int64, _ time.Time) (bool, error) {
			return !booked[roomNumber], nil
		}).AnyTimes()
	f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
			booked[booking.RoomNumber] = true

			return int64(len(booked)), nil
		}).Times(2)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any(), roomModel.FieldPrice).Return(roomModel.Room{Price: 100}, nil).Times(2)

	first, err := f.svc.Book(ctx, dto.BookRequest{HotelID: 1, RoomNumber: 101, Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), first.Price)

	_, err = f.svc.Book(ctx, dto.BookRequest{HotelID: 1, RoomNumber: 101, Date: "2024-05-01"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	other, err := f.svc.Book(ctx, dto.BookRequest{HotelID: 1, RoomNumber: 102, Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), other.ID)
	assert.Len(t, booked, 2)
}

func TestBookingService_RecentBookings(t *testing.T) {
	t.Run("own bookings", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().RecentByCustomer(gomock.Any(), customerID, 5).Return([]model.CustomerBooking{
			{ID: 2, HotelID: 1, RoomNumber: 102, Price: 90, BookingDate: bookingDate},
			{ID: 1, HotelID: 1, RoomNumber: 101, Price: 100, BookingDate: bookingDate.AddDate(0, 0, -1)},
		}, nil)

		res, err := f.svc.RecentBookings(session.WithUser(context.Background(), customerID))

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, dto.CustomerBookingResponse{ID: 2, HotelID: 1, RoomNumber: 102, Price: 90, Date: "2024-05-01"}, res[0])
	})

	t.Run("requires a session", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.RecentBookings(context.Background())

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestBookingService_HotelBookingHistory(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.HistoryRequest
		setupMock func(f fixture)
		expected  int
		wantCode  int
	}{
		{
			name: "manager history",
			req:  dto.HistoryRequest{Start: "2024-05-01", End: "05/31/2024"},
			setupMock: func(f fixture) {
				f.access.EXPECT().EnsureManager(gomock.Any()).Return(managerID, nil)
				f.repo.EXPECT().HistoryByManager(gomock.Any(), managerID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, start, end time.Time) ([]model.HotelBooking, error) {
						assert.Equal(t, 30, int(end.Sub(start).Hours()/24))

						return []model.HotelBooking{{ID: 1, CustomerName: "Alice", HotelID: 1, RoomNumber: 101, BookingDate: bookingDate}}, nil
					})
			},
			expected: 1,
		},
		{
			name: "customer rejected",
			req:  dto.HistoryRequest{Start: "2024-05-01", End: "2024-05-31"},
			setupMock: func(f fixture) {
				f.access.EXPECT().EnsureManager(gomock.Any()).Return(int64(0), failure.ForbiddenError)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "reversed range",
			req:  dto.HistoryRequest{Start: "2024-05-31", End: "2024-05-01"},
			setupMock: func(f fixture) {
				f.access.EXPECT().EnsureManager(gomock.Any()).Return(managerID, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			req:  dto.HistoryRequest{Start: "yesterday", End: "2024-05-01"},
			setupMock: func(f fixture) {
				f.access.EXPECT().EnsureManager(gomock.Any()).Return(managerID, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.HotelBookingHistory(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, res, tt.expected)
		})
	}
}

func TestBookingService_RegularCustomers(t *testing.T) {
	t.Run("hotel manager", func(t *testing.T) {
		f := newFixture(t)

		f.access.EXPECT().EnsureHotelManager(gomock.Any(), int64(1)).Return(managerID, nil)
		f.repo.EXPECT().TopCustomers(gomock.Any(), int64(1), 5).Return([]model.RegularCustomer{
			{CustomerID: 42, Name: "Alice", Bookings: 3},
			{CustomerID: 43, Name: "Bob", Bookings: 1},
		}, nil)

		res, err := f.svc.RegularCustomers(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, []dto.RegularCustomerResponse{
			{CustomerID: 42, Name: "Alice", Bookings: 3},
			{CustomerID: 43, Name: "Bob", Bookings: 1},
		}, res)
	})

	t.Run("manager of another hotel", func(t *testing.T) {
		f := newFixture(t)

		f.access.EXPECT().EnsureHotelManager(gomock.Any(), int64(1)).Return(int64(0), failure.HotelRestrictedError)

		_, err := f.svc.RegularCustomers(context.Background(), 1)

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}
