package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/session"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

func newServer(t *testing.T, jwtService jwt.JWT) *chi.Mux {
	t.Helper()

	mw := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get())

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := session.UserID(r.Context())
		_, _ = w.Write([]byte(strconv.FormatInt(userID, 10)))
	}

	router := chi.NewRouter()
	router.Use(mw.Auth, mw.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", echoUser)
		r.Post("/bookings", echoUser)
		r.Get("/rooms/updates", echoUser)
	})

	return router
}

func TestAuthRole(t *testing.T) {
	customer := &jwt.Claims{UserID: 4, Name: "Alice", Role: constant.RoleCustomer, TokenID: "t-1", Type: jwt.AccessToken}
	manager := &jwt.Claims{UserID: 3, Name: "Maria", Role: constant.RoleManager, TokenID: "t-2", Type: jwt.AccessToken}

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setupMock  func(m *jwtMocks.MockJWT)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public endpoint needs no token",
			method:     http.MethodPost,
			path:       "/v1/auth/login",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
			wantBody:   "0",
		},
		{
			name:       "missing header",
			method:     http.MethodPost,
			path:       "/v1/bookings",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			method:     http.MethodPost,
			path:       "/v1/bookings",
			header:     "Token abc",
			setupMock:  func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "revoked token",
			method: http.MethodPost,
			path:   "/v1/bookings",
			header: "Bearer revoked",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "revoked", jwt.AccessToken).Return(nil, jwt.ErrRevokedToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "revoked",
		},
		{
			name:   "customer books",
			method: http.MethodPost,
			path:   "/v1/bookings",
			header: "Bearer customer",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "customer", jwt.AccessToken).Return(customer, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "4",
		},
		{
			name:   "customer cannot read room updates",
			method: http.MethodGet,
			path:   "/v1/rooms/updates",
			header: "Bearer customer",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "customer", jwt.AccessToken).Return(customer, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "manager reads room updates",
			method: http.MethodGet,
			path:   "/v1/rooms/updates",
			header: "Bearer manager",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "manager", jwt.AccessToken).Return(manager, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(mockJWT)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			newServer(t, mockJWT).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
