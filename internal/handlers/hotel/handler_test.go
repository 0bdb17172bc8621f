package hotel_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	availabilityMocks "hotel/internal/domains/availability/mocks"
	availabilityDto "hotel/internal/domains/availability/model/dto"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingDto "hotel/internal/domains/booking/model/dto"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/handlers/hotel"
	"hotel/shared/failure"
)

type handlerMocks struct {
	hotel        *hotelMocks.MockHotelService
	availability *availabilityMocks.MockAvailability
	booking      *bookingMocks.MockBookingService
}

func newRouter(t *testing.T, setup func(m handlerMocks)) chi.Router {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		hotel:        hotelMocks.NewMockHotelService(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		booking:      bookingMocks.NewMockBookingService(ctrl),
	}
	setup(m)

	handler := hotel.New(m.hotel, m.availability, m.booking, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_Nearby(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m handlerMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "found",
			query: "?latitude=10&longitude=20&radius=5",
			setupMock: func(m handlerMocks) {
				m.hotel.EXPECT().Nearby(gomock.Any(), dto.NearbyRequest{Latitude: 10, Longitude: 20, Radius: 5}).
					Return(dto.NearbyHotelsResponse{Radius: 5, Hotels: []dto.NearbyHotel{{ID: 1, Name: "Seaside", Distance: 1}}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Seaside"`,
		},
		{
			name:  "radius is optional",
			query: "?latitude=10&longitude=20",
			setupMock: func(m handlerMocks) {
				m.hotel.EXPECT().Nearby(gomock.Any(), dto.NearbyRequest{Latitude: 10, Longitude: 20}).
					Return(dto.NearbyHotelsResponse{Radius: 30}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing latitude",
			query:      "?longitude=20",
			setupMock:  func(handlerMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "latitude is required",
		},
		{
			name:       "longitude not a number",
			query:      "?latitude=10&longitude=east",
			setupMock:  func(handlerMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "longitude must be a number",
		},
		{
			name:       "negative radius",
			query:      "?latitude=10&longitude=20&radius=-1",
			setupMock:  func(handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotels/nearby"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_Rooms(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m handlerMocks)
		wantStatus int
	}{
		{
			name: "listed",
			path: "/hotels/3/rooms?date=2024-05-10",
			setupMock: func(m handlerMocks) {
				m.availability.EXPECT().Rooms(gomock.Any(), availabilityDto.RoomsRequest{HotelID: 3, Date: "2024-05-10"}).
					Return(availabilityDto.RoomsResponse{HotelID: 3, Date: "2024-05-10"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid date is reported by the service",
			path: "/hotels/3/rooms?date=tomorrow",
			setupMock: func(m handlerMocks) {
				m.availability.EXPECT().Rooms(gomock.Any(), gomock.Any()).
					Return(availabilityDto.RoomsResponse{}, failure.BadRequestFromString("date is not a valid date"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad hotel id",
			path:       "/hotels/x/rooms?date=2024-05-10",
			setupMock:  func(handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_RegularCustomers(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m handlerMocks)
		wantStatus int
	}{
		{
			name: "listed",
			setupMock: func(m handlerMocks) {
				m.booking.EXPECT().RegularCustomers(gomock.Any(), int64(3)).
					Return([]bookingDto.RegularCustomerResponse{{CustomerID: 7, Bookings: 4}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not the manager of the hotel",
			setupMock: func(m handlerMocks) {
				m.booking.EXPECT().RegularCustomers(gomock.Any(), int64(3)).Return(nil, failure.HotelRestrictedError)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotels/3/regular-customers", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
