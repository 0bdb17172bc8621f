package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/permissions"
	"hotel/shared/constant"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{"login is public", "/v1/auth/login", http.MethodPost, true, nil},
		{"room listing is public", "/v1/hotels/{hotelID}/rooms", http.MethodGet, true, nil},
		{"booking needs a user", "/v1/bookings", http.MethodPost, false, []string{constant.RoleCustomer, constant.RoleManager}},
		{"room update is for managers", "/v1/hotels/{hotelID}/rooms/{roomNumber}", http.MethodPatch, false, []string{constant.RoleManager}},
		{"repair list is for managers", "/v1/repairs", http.MethodGet, false, []string{constant.RoleManager}},
		{"unknown route", "/v1/unknown", http.MethodGet, false, nil},
		{"method is part of the key", "/v1/auth/login", http.MethodGet, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.Equal(t, tt.roles, permission.Permissions)
		})
	}
}
