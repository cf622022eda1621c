package permissions_test

import (
	"testing"

	"gymroom/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/rooms/{id}", "DELETE").Permissions)
	assert.Contains(t, data.FindPermissions("/v1/rooms", "GET").Permissions, "guest")
	assert.Empty(t, data.FindPermissions("/health", "GET").Permissions)
}

func TestParse(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))
	assert.Error(t, err)

	data, err := permissions.Parse([]byte(`{"skip":true}`))
	require.NoError(t, err)
	assert.True(t, data.Skip)
}
