package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/api/shared"
)

func TestTrace_AssignsTraceID(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, seen)
}

func TestTrace_DistinctPerRequest(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, 2)
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, shared.GetTraceID(r.Context()))
	}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}
