package context

import (
	"context"
	"net/http"

	appErrors "github.com/aquago/aquago/internal/app/errors"
)

// GetContextError maps a settled context into the error shape the UI layer
// understands. The HTTP clients check it after a failed round trip so a
// timed-out call surfaces as a retryable message instead of a raw transport
// error.
func GetContextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		var errMsg string
		var errCode int

		switch err {
		case context.Canceled:
			errMsg, errCode = "Request canceled", http.StatusInternalServerError
		case context.DeadlineExceeded:
			errMsg, errCode = "Timeout exceeded", http.StatusInternalServerError
		default:
			errMsg, errCode = "Context error", http.StatusInternalServerError
		}
		return appErrors.NewWithCode(err, errMsg, errCode)
	}
	return nil
}
