package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"slices"

	"bizsite-api/internal/export"
)

type exportSource func(ctx context.Context, h *Handler) ([]export.Record, error)

// The stores list newest first; exports run oldest first, in insertion order.
var exportSources = map[string]exportSource{
	"appointments": func(ctx context.Context, h *Handler) ([]export.Record, error) {
		return oldestFirst(h.store.ListAppointments(ctx))
	},
	"messages": func(ctx context.Context, h *Handler) ([]export.Record, error) {
		return oldestFirst(h.store.ListMessages(ctx))
	},
	"blogs": func(ctx context.Context, h *Handler) ([]export.Record, error) {
		return oldestFirst(h.store.ListBlogPosts(ctx))
	},
}

func oldestFirst[T export.Record](items []T, err error) ([]export.Record, error) {
	if err != nil {
		return nil, err
	}
	slices.Reverse(items)
	return export.Records(items), nil
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("type")
	src, ok := exportSources[kind]
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid export type")
		return
	}

	records, err := src(r.Context(), h)
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	f, err := export.Workbook(kind, records)
	if errors.Is(err, export.ErrEmpty) {
		writeMessage(w, http.StatusNotFound, "No data found to export.")
		return
	}
	if err != nil {
		writeFault(w, r, "Error building export", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+kind+".xlsx")
	if err := f.Write(w); err != nil {
		log.Printf("export %s: %v", kind, err)
	}
}
