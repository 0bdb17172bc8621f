package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/access/service"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/failure"
)

func TestAccessService_RequireManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	svc := service.New(mockUserRepo, mockHotelRepo, mocks.NewOtel())

	managerFilter := shared.FilterAll("users", map[string]any{"id": int64(10), "user_type": "manager"})

	tests := []struct {
		name      string
		setupMock func()
		expected  bool
		wantErr   bool
	}{
		{
			name: "manager",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), managerFilter).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "customer or unknown user",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), managerFilter).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "store failure",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), managerFilter).Return(false, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ok, err := svc.RequireManager(context.Background(), 10)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestAccessService_RequireHotelManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	svc := service.New(mockUserRepo, mockHotelRepo, mocks.NewOtel())

	hotelFilter := shared.FilterAll("hotels", map[string]any{"id": int64(1), "manager_user_id": int64(10)})

	tests := []struct {
		name      string
		setupMock func()
		expected  bool
		wantErr   bool
	}{
		{
			name: "manager of the hotel",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), hotelFilter).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "manager of another hotel",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), hotelFilter).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "not a manager skips hotel lookup",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "hotel lookup fails",
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), hotelFilter).Return(false, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ok, err := svc.RequireHotelManager(context.Background(), 10, 1)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestAccessService_EnsureHotelManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	svc := service.New(mockUserRepo, mockHotelRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantCode  int
	}{
		{
			name:      "no session",
			ctx:       context.Background(),
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "customer",
			ctx:  session.WithUser(context.Background(), 5),
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "other hotel's manager",
			ctx:  session.WithUser(context.Background(), 11),
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "hotel manager",
			ctx:  session.WithUser(context.Background(), 10),
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			userID, err := svc.EnsureHotelManager(tt.ctx, 1)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Zero(t, userID)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(10), userID)
		})
	}
}
