package httpadapter

import "net/http"

// handleDashboard returns the dashboard of the authenticated viewer. The
// admin section is included only when the role check has been granted;
// role check failures never reach the client.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.dashboard.Dashboard(r.Context(), viewer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}
