package handler

import (
	"net/http"

	"bizsite-api/internal/model"
	"bizsite-api/internal/validate"
)

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}
	v, err := validate.Strings(p, validate.MessageFields...)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	m := &model.Message{Name: v["name"], Email: v["email"], Phone: v["phone"], Message: v["message"]}
	if err := h.store.CreateMessage(r.Context(), m); err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeMessage(w, http.StatusCreated, "Message received successfully!")
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.store.ListMessages(r.Context())
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
