package http

import (
	"net/http"
)

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		writeMappedError(w, r, "forgot_password", err)
		return
	}
	writeMessage(w, http.StatusOK, "a new password has been sent to your email")
}
