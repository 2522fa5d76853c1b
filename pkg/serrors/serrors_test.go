package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"personcheck/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrMethodNotAllowed,
		serrors.ErrInternal,
		serrors.ErrTimeout,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("template broken")

	e1 := serrors.With(serrors.ErrBadRequest, "age %q is not a number", "abc")
	require.Equal(t, `age "abc" is not a number`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "rendering page")
	require.Equal(t, "rendering page: template broken", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrTimeout)
	require.Equal(t, "TIMEOUT", e3.Error())
}

func TestSubKindMatchesParent(t *testing.T) {
	invalidAge := serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_AGE")
	err := serrors.With(invalidAge, "bad age")

	require.ErrorIs(t, err, invalidAge)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.NotErrorIs(t, err, serrors.ErrInternal)

	// siblings stay distinct
	invalidName := serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_NAME")
	require.NotErrorIs(t, err, invalidName)
	require.NotEqual(t, invalidAge, invalidName)
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInternal, base, "executing template")

	require.ErrorIs(t, e, serrors.ErrInternal)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInternal, base, "executing template")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrInternal, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrTimeout, base, "too slow")
	require.Equal(t, serrors.ErrTimeout, e.Kind())
	require.Equal(t, "too slow", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))

	wrapped := fmt.Errorf("handler: %w", serrors.With(serrors.ErrBadRequest, "nope"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	sub := serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_HEIGHT")

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "bad request", err: serrors.KindOnly(serrors.ErrBadRequest), want: http.StatusBadRequest},
		{name: "sub kind of bad request", err: serrors.With(sub, "x"), want: http.StatusBadRequest},
		{name: "method", err: serrors.KindOnly(serrors.ErrMethodNotAllowed), want: http.StatusMethodNotAllowed},
		{name: "timeout", err: serrors.KindOnly(serrors.ErrTimeout), want: http.StatusGatewayTimeout},
		{name: "internal", err: serrors.KindOnly(serrors.ErrInternal), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serrors.HTTPStatus(tc.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "age must be positive",
		serrors.PublicMessage(serrors.With(serrors.ErrBadRequest, "age must be positive")))
	require.Equal(t, "Internal Server Error",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrInternal, errors.New("db"), "secret detail")))
	require.Equal(t, "Internal Server Error", serrors.PublicMessage(errors.New("raw")))
	require.Equal(t, "Bad Request", serrors.PublicMessage(serrors.KindOnly(serrors.ErrBadRequest)))
}
