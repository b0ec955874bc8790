package get_admin_bookings

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	query, err := url.ParseQuery("roomId=3&from=2025-02-01&to=2025-02-28&status=pending&status=confirmed,checked_in")
	require.NoError(t, err)

	req, err := ToServiceRequest(100, query)
	require.NoError(t, err)
	assert.Equal(t, int64(100), req.UserID)
	require.NotNil(t, req.RoomID)
	assert.Equal(t, int64(3), *req.RoomID)
	assert.Equal(t, "2025-02-01", req.From.String())
	assert.Equal(t, "2025-02-28", req.To.String())
	assert.Equal(t, []string{"pending", "confirmed,checked_in"}, req.Status)

	empty, err := ToServiceRequest(100, url.Values{})
	require.NoError(t, err)
	assert.Nil(t, empty.RoomID)
	assert.Nil(t, empty.From)

	for _, raw := range []string{"roomId=abc", "from=01.02.2025", "to=2025-13-01"} {
		query, err := url.ParseQuery(raw)
		require.NoError(t, err)
		_, err = ToServiceRequest(100, query)
		assert.Error(t, err, raw)
	}
}
