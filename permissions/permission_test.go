package permissions_test

import (
	"hotel/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	incoming := data.FindPermissions("/v1/sync/incoming", http.MethodPost)
	assert.Equal(t, []string{"admin"}, incoming.Permissions)

	availability := data.FindPermissions("/v1/inventory/check-availability", http.MethodPost)
	assert.True(t, availability.Skip)
}

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/swagger/*","method":"GET","skip":true},
		{"path":"/v1/bookings/{id}","method":"GET","permissions":["customer"]}
	]}`))
	require.NoError(t, err)

	assert.True(t, data.FindPermissions("/swagger/index.html", http.MethodGet).Skip)
	assert.Equal(t, []string{"customer"}, data.FindPermissions("/v1/bookings/{id}", http.MethodGet).Permissions)
	assert.Empty(t, data.FindPermissions("/v1/bookings/{id}", http.MethodDelete))
	assert.False(t, data.FindPermissions("/swagger/index.html", http.MethodPost).Skip)
}

func TestParse_Rejects(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/rooms","method":"POST","permissions":["owner"]}]}`))
	assert.ErrorContains(t, err, `unknown role "owner"`)

	_, err = permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
