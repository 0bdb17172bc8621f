package room_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	"hotel/shared/failure"
)

func TestHandler_UpdateRoom(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func(svc *roomMocks.MockRoomService)
		wantStatus int
	}{
		{
			name: "updated",
			path: "/hotels/1/rooms/101",
			body: `{"price":150,"image_url":"http://img/101.png"}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateRoomRequest{
					HotelID: 1, RoomNumber: 101, Price: 150, ImageURL: "http://img/101.png",
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid fields reach the service so the guard runs first",
			path: "/hotels/1/rooms/101",
			body: `{"price":-5,"image_url":""}`,
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(failure.HotelRestrictedError)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "bad room number",
			path:       "/hotels/1/rooms/abc",
			body:       `{"price":150,"image_url":"x"}`,
			setupMock:  func(*roomMocks.MockRoomService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-positive hotel id",
			path:       "/hotels/0/rooms/101",
			body:       `{"price":150,"image_url":"x"}`,
			setupMock:  func(*roomMocks.MockRoomService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := roomMocks.NewMockRoomService(ctrl)
			tt.setupMock(svc)

			handler := room.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_RecentUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := roomMocks.NewMockRoomService(ctrl)

	svc.EXPECT().RecentUpdates(gomock.Any()).
		Return([]dto.UpdateLogResponse{{ID: 1, HotelID: 1, RoomNumber: 101, UpdatedOn: "2024-05-10T10:00:00Z"}}, nil)

	handler := room.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/updates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"room_number":101`)
}
