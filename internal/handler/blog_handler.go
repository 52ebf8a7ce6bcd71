package handler

import (
	"errors"
	"net/http"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
	"bizsite-api/internal/validate"
)

func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}
	v, err := validate.Strings(p, validate.BlogFields...)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	b := &model.BlogPost{Title: v["title"], Date: v["date"], Image: v["image"], Content: v["content"]}
	if err := h.store.CreateBlogPost(r.Context(), b); err != nil {
		writeFault(w, r, "Error creating blog", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Blog created successfully",
		"blog":    b,
	})
}

func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	b, err := h.store.GetBlogPost(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.store.ListBlogPosts(r.Context())
	if err != nil {
		writeFault(w, r, "Server error", err)
		return
	}
	out := make([]model.BlogSummary, len(blogs))
	for i := range blogs {
		out[i] = blogs[i].Summary()
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateBlog merges whichever of title, date, image and content the body
// carries. A missing id answers 200 with null.
func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	p, ok := payload(w, r)
	if !ok {
		return
	}

	patch, err := blogPatch(p)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	b, err := h.store.UpdateBlogPost(r.Context(), r.PathValue("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeFault(w, r, "Error updating blog", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func blogPatch(p map[string]any) (model.BlogPatch, error) {
	v, err := validate.Text(p, validate.BlogFields...)
	if err != nil {
		return model.BlogPatch{}, err
	}
	field := func(key string) *string {
		s, ok := v[key]
		if !ok {
			return nil
		}
		return &s
	}
	return model.BlogPatch{
		Title:   field("title"),
		Date:    field("date"),
		Image:   field("image"),
		Content: field("content"),
	}, nil
}

func (h *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteBlogPost(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeFault(w, r, "Error deleting blog", err)
		return
	}
	writeMessage(w, http.StatusOK, "Blog deleted successfully")
}
