package handler

import (
	"errors"
	"net/http"
	"net/url"
)

const uploadField = "image"

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}
	file, hdr, err := r.FormFile(uploadField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	ct := hdr.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	name, err := h.files.Put(r.Context(), hdr.Filename, file, hdr.Size, ct)
	if err != nil {
		writeFault(w, r, "Error saving file", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"url": h.publicURL + "/uploads/" + url.PathEscape(name),
	})
}
