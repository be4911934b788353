package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"ad-exchange/internal/core/domain"
)

// errorResponse is the JSON body of every non-2xx reply.
type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log only
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to status codes. Unknown errors are logged
// and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status = http.StatusInternalServerError
		body   = errorResponse{Error: "internal error"}
	)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
		body = errorResponse{Error: domain.ErrUnauthenticated.Error(), Redirect: "/auth"}
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		status = http.StatusNotFound
		body.Error = err.Error()
	case errors.Is(err, domain.ErrClaimInFlight),
		errors.Is(err, domain.ErrNotClaimable),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrSwitchLocked),
		errors.Is(err, domain.ErrNoAdAvailable),
		errors.Is(err, domain.ErrInterstitialOpen),
		errors.Is(err, domain.ErrNoInterstitial):
		status = http.StatusConflict
		body.Error = err.Error()
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
	}
	h.writeJSON(w, status, body)
}
