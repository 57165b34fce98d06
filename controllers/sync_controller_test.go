package controllers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"affiliate-hub/services"

	"github.com/stretchr/testify/assert"
)

func TestSyncErrorResponseMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"timeout", &services.TimeoutError{URL: "http://feed", Timeout: 10 * time.Second}, http.StatusGatewayTimeout},
		{"connection", &services.ConnectionError{URL: "http://feed", Err: errors.New("refused")}, http.StatusBadGateway},
		{"transport", &services.TransportError{Status: 500}, http.StatusBadGateway},
		{"format", &services.FormatError{Err: errors.New("bad json")}, http.StatusBadGateway},
		{"integrity", &services.IntegrityError{Err: errors.New("duplicate")}, http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := syncErrorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
			assert.NotContains(t, message, "http://feed", "messages must not leak internals")
		})
	}
}
