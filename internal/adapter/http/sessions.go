package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleStartSession opens a view-ads session. When no ad is eligible the
// session is still created and reported in the "empty" phase.
func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.viewing.StartSession(r.Context(), viewer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

// handleGetSession returns the session state; clients poll it to follow
// the countdown.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.viewing.Session(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleLoadDifferentAd(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.viewing.LoadDifferentAd(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleClaim settles the reward. A claim issued while another one is
// still being confirmed gets 409.
func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.viewing.Claim(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleDismissInterstitial(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.viewing.DismissInterstitial(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.viewing.CloseSession(r.Context(), viewer, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
