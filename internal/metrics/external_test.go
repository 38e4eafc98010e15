package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "/api/users/{id}/profile",
		normalizeEndpoint("/api/users/123e4567-e89b-12d3-a456-426614174000/profile"))
	assert.Equal(t, "/api/notifications/internal", normalizeEndpoint("/api/notifications/internal"))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		status   int
		err      error
		expected string
	}{
		{404, nil, "not_found"},
		{418, nil, "client_error"},
		{503, nil, "service_unavailable"},
		{599, nil, "server_error"},
		{0, errors.New("dial tcp: connection refused"), "connection_refused"},
		{0, errors.New("context deadline exceeded"), "timeout"},
		{0, errors.New("lookup noti: no such host"), "dns_error"},
		{0, errors.New("unexpected EOF"), "connection_reset"},
		{0, errors.New("boom"), "network_error"},
		{200, nil, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, getErrorType(tt.status, tt.err))
	}
}

func TestRecordExternalAPICallCountsErrors(t *testing.T) {
	m := getTestMetrics()

	m.RecordExternalAPICall("/api/auth/validate", "POST", 500, 0, nil)
	m.RecordExternalAPICall("/api/auth/validate", "POST", 200, 0, nil)

	assert.Equal(t, 1.0, getCounterValue(t, m.ExternalAPIErrors.WithLabelValues("/api/auth/validate", "internal_server_error")))
	assert.Equal(t, 1.0, getCounterValue(t, m.ExternalAPIRequestsTotal.WithLabelValues("/api/auth/validate", "POST", "200")))
}
