package list_bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest("3", "confirmed", "2024-01-15", "2024-01-21", "false")
	require.NoError(t, err)
	require.NotNil(t, req.GymID)
	assert.Equal(t, int64(3), *req.GymID)
	require.NotNil(t, req.Status)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Equal(t, "2024-01-15", req.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-21", req.EndDate.Format("2006-01-02"))
	assert.False(t, req.IncludeCancelled)

	req, err = ToServiceRequest("", "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, req.GymID)
	assert.True(t, req.IncludeCancelled)

	_, err = ToServiceRequest("x", "", "", "", "")
	assert.Error(t, err)

	_, err = ToServiceRequest("", "", "2024-01-21", "2024-01-15", "")
	assert.Error(t, err)

	_, err = ToServiceRequest("", "", "", "", "maybe")
	assert.Error(t, err)
}
