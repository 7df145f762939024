package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_InjectsLoggerIntoContext(t *testing.T) {
	var seen *Logger
	handler := RequestLogger(NewLogger(true))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLoggerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotNil(t, seen)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	logger := GetLoggerFromContext(context.Background())
	require.NotNil(t, logger, "background contexts get a default logger")
}

func TestStatusWriter_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	_, err := sw.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, sw.status)
	assert.True(t, sw.wroteHeader)
}

func TestStatusWriter_CapturesExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.WriteHeader(http.StatusTeapot)
	sw.WriteHeader(http.StatusOK) // second call is ignored

	assert.Equal(t, http.StatusTeapot, sw.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
