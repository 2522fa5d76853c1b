package controller_test

import (
	"net/http"
	"net/http/httptest"
	"personcheck/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
