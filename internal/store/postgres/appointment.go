package postgres

import (
	"context"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	a.ID, a.CreatedAt = store.NewID(), store.Now()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, name, phone, date, service, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.Name, a.Phone, a.Date, a.Service, a.CreatedAt,
	)
	return store.Wrap("create appointment", err)
}

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, phone, date, service, created_at
		 FROM appointments
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, store.Wrap("list appointments", err)
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.Date, &a.Service, &a.CreatedAt); err != nil {
			return nil, store.Wrap("list appointments", err)
		}
		a.CreatedAt = a.CreatedAt.UTC()
		out = append(out, a)
	}
	return out, store.Wrap("list appointments", rows.Err())
}
