package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"bizsite-api/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username and password required")
		return
	}

	tok, err := h.admin.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrBadCredentials) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}
