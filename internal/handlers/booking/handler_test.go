package booking_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *bookingMocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "booked",
			body: `{"hotel_id":1,"room_number":101,"date":"2024-05-10"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Book(gomock.Any(), dto.BookRequest{HotelID: 1, RoomNumber: 101, Date: "2024-05-10"}).
					Return(dto.BookingResponse{ID: 9, HotelID: 1, RoomNumber: 101, Date: "2024-05-10", Price: 150}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"price":150`,
		},
		{
			name: "already booked",
			body: `{"hotel_id":1,"room_number":101,"date":"2024-05-10"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("room 101 at hotel 1 is already booked on 2024-05-10"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   "already booked",
		},
		{
			name: "price lookup failed after insert",
			body: `{"hotel_id":1,"room_number":101,"date":"2024-05-10"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{ID: 9, HotelID: 1, RoomNumber: 101, Date: "2024-05-10"}, errors.New("connection reset"))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":9`,
		},
		{
			name:       "malformed body",
			body:       `{"hotel_id":`,
			setupMock:  func(*bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_GetHistory(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().HotelBookingHistory(gomock.Any(), dto.HistoryRequest{Start: "2024-01-01", End: "2024-01-31"}).
		Return([]dto.HotelBookingResponse{{ID: 3, CustomerName: "Alice", HotelID: 1, RoomNumber: 101, Date: "2024-01-12"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings/history?start=2024-01-01&end=2024-01-31", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []dto.HotelBookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "Alice", body.Data[0].CustomerName)
}

func TestHandler_GetMyBookings(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().RecentBookings(gomock.Any()).Return(nil, failure.LoginRequiredError)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/mine", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
