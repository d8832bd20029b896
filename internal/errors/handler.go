package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorHandler renders API errors consistently and logs server-side
// failures with request context.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{logger: logger}
}

// HandleError writes err as a JSON error response. Non-APIError values are
// wrapped as internal server errors so details never leak to the client.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := AsAPIError(err)

	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error_code", apiErr.ErrorCode),
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
	}

	if renderErr := render.Render(w, r, NewErrorResponse(apiErr)); renderErr != nil {
		WriteError(w, apiErr)
	}
}

// AsAPIError converts any error into an APIError, defaulting to a 500.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternalServer
}
