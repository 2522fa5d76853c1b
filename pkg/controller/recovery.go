package controller

import (
	"errors"
	"net/http"
	"personcheck/pkg/logger"

	"go.uber.org/zap"
)

// WithRecovery converts a panic in next into a logged 500 response. If the
// handler already started writing, the response is left as is. Aborted
// handlers (http.ErrAbortHandler) are re-panicked so net/http can drop the
// connection.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(p)
			}

			logger.Error(r.Context(), "recovered from handler panic",
				zap.Any("panic", p),
				zap.Stack("stack"),
			)

			if !rec.wroteHeader {
				http.Error(rec, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
