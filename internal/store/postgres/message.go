package postgres

import (
	"context"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

func (s *Store) CreateMessage(ctx context.Context, m *model.Message) error {
	m.ID, m.CreatedAt = store.NewID(), store.Now()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO messages (id, name, email, phone, message, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.Name, m.Email, m.Phone, m.Message, m.CreatedAt,
	)
	return store.Wrap("create message", err)
}

func (s *Store) ListMessages(ctx context.Context) ([]model.Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM messages
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, store.Wrap("list messages", err)
	}
	defer rows.Close()

	out := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, store.Wrap("list messages", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	return out, store.Wrap("list messages", rows.Err())
}
