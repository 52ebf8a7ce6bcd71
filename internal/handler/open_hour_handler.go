package handler

import (
	"errors"
	"net/http"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
	"bizsite-api/internal/validate"
)

var openHourFields = []string{"day", "open", "close"}

// openHour reads day, open and close; absent ones stay "".
func openHour(p map[string]any) (*model.OpenHour, error) {
	v, err := validate.Text(p, openHourFields...)
	if err != nil {
		return nil, err
	}
	return &model.OpenHour{Day: v["day"], Open: v["open"], Close: v["close"]}, nil
}

func (h *Handler) ListOpenHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.store.ListOpenHours(r.Context())
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

// SaveOpenHour creates the day's hours or overwrites open/close of the
// existing record for that day.
func (h *Handler) SaveOpenHour(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}
	oh, err := openHour(p)
	if err != nil {
		writeInvalid(w, err)
		return
	}
	if err := h.store.UpsertOpenHour(r.Context(), oh); err != nil {
		writeFault(w, r, "Error saving open hour", err)
		return
	}
	writeJSON(w, http.StatusOK, oh)
}

func (h *Handler) ReplaceOpenHour(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}
	oh, err := openHour(p)
	if err != nil {
		writeInvalid(w, err)
		return
	}
	oh.ID = r.PathValue("id")

	err = h.store.ReplaceOpenHour(r.Context(), oh)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeFault(w, r, "Error updating open hour", err)
		return
	}
	writeJSON(w, http.StatusOK, oh)
}
