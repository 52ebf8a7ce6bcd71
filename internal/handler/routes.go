package handler

import "net/http"

type middleware = func(http.Handler) http.Handler

func with(mw middleware) func(http.HandlerFunc) http.Handler {
	return func(f http.HandlerFunc) http.Handler {
		if mw == nil {
			return f
		}
		return mw(f)
	}
}

// Routes mounts every endpoint. admin guards operator routes and limit
// throttles public writes; either may be nil.
func (h *Handler) Routes(admin, limit middleware) *http.ServeMux {
	op := with(admin)
	public := with(limit)
	mux := http.NewServeMux()

	mux.Handle("POST /api/appointments", public(h.CreateAppointment))
	mux.Handle("GET /api/appointments", op(h.ListAppointments))

	mux.Handle("POST /api/messages", public(h.CreateMessage))
	mux.Handle("GET /api/messages", op(h.ListMessages))

	mux.Handle("POST /api/blogs", op(h.CreateBlog))
	mux.HandleFunc("GET /api/blogs", h.ListBlogs)
	mux.HandleFunc("GET /api/blogs/{id}", h.GetBlog)
	mux.Handle("PUT /api/blogs/{id}", op(h.UpdateBlog))
	mux.Handle("DELETE /api/blogs/{id}", op(h.DeleteBlog))

	mux.HandleFunc("GET /api/open-hours", h.ListOpenHours)
	mux.Handle("POST /api/open-hours", op(h.SaveOpenHour))
	mux.Handle("PUT /api/open-hours/{id}", op(h.ReplaceOpenHour))

	mux.Handle("POST /api/upload", op(h.Upload))
	mux.Handle("GET /api/export/{type}", op(h.Export))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads", h.files))

	if h.admin != nil {
		mux.Handle("POST /api/auth/login", public(h.Login))
	}
	mux.HandleFunc("GET /healthz", h.Health)
	return mux
}
