package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/goccy/go-json"

	"bizsite-api/internal/validate"
)

const maxBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeFault reports a storage fault as 500 with its message attached.
func writeFault(w http.ResponseWriter, r *http.Request, msg string, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"message": msg,
		"error":   err.Error(),
	})
}

func writeInvalid(w http.ResponseWriter, err error) {
	var me *validate.MissingError
	if errors.As(err, &me) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "All fields are required.",
			"missing": me.Fields,
		})
		return
	}
	var te *validate.TypeError
	if errors.As(err, &te) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Invalid field values",
			"invalid": te.Fields,
		})
		return
	}
	writeMessage(w, http.StatusBadRequest, err.Error())
}

// decodeBody reads a JSON object body. An empty body decodes to an empty
// payload.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	var payload map[string]any
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// payload decodes the body and answers 400 itself when that fails.
func payload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	p, err := decodeBody(w, r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	return p, true
}
