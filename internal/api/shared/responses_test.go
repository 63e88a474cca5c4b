package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]interface{}{"success": true, "created": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"created":7}`, w.Body.String())
}

// Test for json encoding errors - this requires a data type that can't be JSON encoded
type UnencodableType struct {
	Fn func() `json:"fn"`
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, UnencodableType{Fn: func() {}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, MessageNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{
		Success: false,
		Error:   http.StatusNotFound,
		Message: "resource not found",
		TraceID: "test-trace-id",
	}, resp)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
		{name: "client error logs at debug", status: http.StatusUnprocessableEntity, wantLevel: "level=DEBUG"},
		{
			name:      "elevated client error logs at warn",
			status:    http.StatusForbidden,
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "level=WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			req := httptest.NewRequest(http.MethodPost, "/drinks", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			w := httptest.NewRecorder()

			cause := errors.New("dial postgres://app:hunter2@db:5432/drinks failed")
			RespondWithErrorAndLog(w, req, tc.status, StatusMessage(tc.status), cause, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, logBuf.String(), tc.wantLevel)
			assert.NotContains(t, logBuf.String(), "hunter2")
			assert.NotContains(t, w.Body.String(), "postgres://")
		})
	}
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "bad request", StatusMessage(http.StatusBadRequest))
	assert.Equal(t, "resource not found", StatusMessage(http.StatusNotFound))
	assert.Equal(t, "method is not allowed", StatusMessage(http.StatusMethodNotAllowed))
	assert.Equal(t, "unprocessable", StatusMessage(http.StatusUnprocessableEntity))
	assert.Equal(t, "internal server error", StatusMessage(http.StatusInternalServerError))
	assert.Equal(t, "Forbidden", StatusMessage(http.StatusForbidden))
}
