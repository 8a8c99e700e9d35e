package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/platform/logger"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "successful response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"message": "success", "data": 123},
			expectedBody: `{"message":"success","data":123}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithErrorDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithErrorDetail(w, req, http.StatusForbidden, "No token provided", "Unauthorized")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"No token provided","message":"Unauthorized"}`, w.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-123")
	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Post not found")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Post not found", resp.Error)
	assert.Equal(t, "trace-123", resp.TraceID)
	assert.Empty(t, resp.Message)
}

func TestRespondWithMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithMessage(w, req, http.StatusOK, "Post deleted successfully")

	assert.JSONEq(t, `{"message":"Post deleted successfully"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	log, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), log)
	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	cause := errors.New("dial tcp db.internal:5432: password=hunter2 refused")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Internal server error", cause)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "hunter2")

	logs := buf.String()
	assert.Contains(t, logs, "API error response")
	assert.NotContains(t, logs, "hunter2")
}
