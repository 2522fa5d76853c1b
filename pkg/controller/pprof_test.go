package controller_test

import (
	"net/http"
	"net/http/httptest"
	"personcheck/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix, nil))

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_NamedProfile(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, controller.PprofPrefix+"goroutine?debug=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "goroutine")
}

func TestPprofMux_Cmdline(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix+"cmdline", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
