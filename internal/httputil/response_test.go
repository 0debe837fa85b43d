package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardid/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "card type not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"not_found","message":"The requested resource was not found"}`,
		},
		{
			name:           "invalid input",
			err:            fmt.Errorf("%w: %q", apperrors.Wrap(apperrors.ErrInvalidInput, "invalid card number"), "12a"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"invalid_input","message":"invalid card number: invalid input: \"12a\""}`,
		},
		{
			name:           "too many requests",
			err:            apperrors.ErrTooManyRequests,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"rate_limit_exceeded","message":"Too many requests, please retry later"}`,
		},
		{
			name:           "request canceled",
			err:            fmt.Errorf("classify batch: %w", context.Canceled),
			expectedStatus: StatusClientClosedRequest,
			expectedBody:   `{"error":"request_canceled","message":"The request was canceled"}`,
		},
		{
			name:           "deadline exceeded",
			err:            fmt.Errorf("classify batch: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   `{"error":"timeout","message":"The request timed out"}`,
		},
		{
			name:           "invalid state",
			err:            apperrors.Wrap(apperrors.ErrInvalidState, "card type requires at least one pattern"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal_error","message":"An internal error occurred"}`,
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal_error","message":"An internal error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandleErrorGin_LogLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		err           error
		expectedLevel string
	}{
		{name: "client error", err: apperrors.ErrInvalidInput, expectedLevel: "WARN"},
		{name: "rate limited", err: apperrors.ErrTooManyRequests, expectedLevel: "WARN"},
		{name: "canceled", err: context.Canceled, expectedLevel: "WARN"},
		{name: "timeout", err: context.DeadlineExceeded, expectedLevel: "ERROR"},
		{name: "server error", err: errors.New("boom"), expectedLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/v1/cards/classify", nil)

			HandleErrorGin(c, tt.err, logger)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "request failed", entry["msg"])
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"unexpected EOF"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, errors.New("number: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation_error","message":"number: cannot be blank."}`, w.Body.String())
}
