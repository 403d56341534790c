package http

import (
	"net/http"
)

// membership responds with the platform's bare snapshot shape rather than the
// status envelope; existing clients consume these field names directly.
func (h *Handler) membership(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot, err := h.service.ComputeMembership(r.Context(), userID)
	if err != nil {
		writeMappedError(w, r, "membership", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"totalSpent":        snapshot.TotalSpent.InexactFloat64(),
		"nextLevelRequired": snapshot.AmountToNextTier.InexactFloat64(),
		"created_at":        snapshot.CreatedAt,
		"daysToThreeYears":  snapshot.DaysToThreeYears,
	})
}
