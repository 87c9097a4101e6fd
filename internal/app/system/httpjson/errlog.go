// internal/app/system/httpjson/errlog.go
package httpjson

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs server-side error logging with client-safe JSON
// responses. Unexpected failures are logged with full detail and surfaced
// to the client as an opaque message — internals never leak.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the given zap logger.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: log}
}

// LogServerError logs err under op and writes an opaque 500 response.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, op string, err error, publicMsg string) {
	e.log.Error(op,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Message(w, http.StatusInternalServerError, publicMsg)
}

// LogBadRequest logs a malformed-input condition and writes a 400 response
// with the given client-safe message.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, op string, err error, publicMsg string) {
	e.log.Warn(op,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Message(w, http.StatusBadRequest, publicMsg)
}
