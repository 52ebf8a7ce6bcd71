package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

func (s *Store) ListOpenHours(ctx context.Context) ([]model.OpenHour, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, day, open_time, close_time FROM open_hours`)
	if err != nil {
		return nil, store.Wrap("list open hours", err)
	}
	defer rows.Close()

	out := []model.OpenHour{}
	for rows.Next() {
		var h model.OpenHour
		if err := rows.Scan(&h.ID, &h.Day, &h.Open, &h.Close); err != nil {
			return nil, store.Wrap("list open hours", err)
		}
		out = append(out, h)
	}
	return out, store.Wrap("list open hours", rows.Err())
}

func (s *Store) UpsertOpenHour(ctx context.Context, h *model.OpenHour) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO open_hours (id, day, open_time, close_time) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (day) DO UPDATE SET open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time
		 RETURNING id, day, open_time, close_time`,
		store.NewID(), h.Day, h.Open, h.Close,
	).Scan(&h.ID, &h.Day, &h.Open, &h.Close)
	return store.Wrap("upsert open hour", err)
}

func (s *Store) ReplaceOpenHour(ctx context.Context, h *model.OpenHour) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE open_hours SET day = $2, open_time = $3, close_time = $4
		 WHERE id = $1
		 RETURNING id, day, open_time, close_time`,
		h.ID, h.Day, h.Open, h.Close,
	).Scan(&h.ID, &h.Day, &h.Open, &h.Close)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return store.Wrap("replace open hour", err)
}
