package handler

import (
	"net/http"

	"bizsite-api/internal/model"
	"bizsite-api/internal/validate"
)

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}
	v, err := validate.Strings(p, validate.AppointmentFields...)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	a := &model.Appointment{Name: v["name"], Phone: v["phone"], Date: v["date"], Service: v["service"]}
	if err := h.store.CreateAppointment(r.Context(), a); err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Appointment saved successfully",
		"appointment": a,
	})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, apts)
}
