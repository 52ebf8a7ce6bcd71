package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

const blogColumns = `id, title, date, image, content, created_at`

func scanBlog(row pgx.Row) (*model.BlogPost, error) {
	b := &model.BlogPost{}
	err := row.Scan(&b.ID, &b.Title, &b.Date, &b.Image, &b.Content, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, b *model.BlogPost) error {
	b.ID, b.CreatedAt = store.NewID(), store.Now()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO blogs (id, title, date, image, content, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		b.ID, b.Title, b.Date, b.Image, b.Content, b.CreatedAt,
	)
	return store.Wrap("create blog", err)
}

func (s *Store) GetBlogPost(ctx context.Context, id string) (*model.BlogPost, error) {
	b, err := scanBlog(s.pool.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id))
	return b, store.Wrap("get blog", err)
}

func (s *Store) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blogs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, store.Wrap("list blogs", err)
	}
	defer rows.Close()

	out := []model.BlogPost{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, store.Wrap("list blogs", err)
		}
		out = append(out, *b)
	}
	return out, store.Wrap("list blogs", rows.Err())
}

// UpdateBlogPost keeps the stored value of every nil patch field.
func (s *Store) UpdateBlogPost(ctx context.Context, id string, p model.BlogPatch) (*model.BlogPost, error) {
	b, err := scanBlog(s.pool.QueryRow(ctx,
		`UPDATE blogs
		 SET title = COALESCE($2, title),
		     date = COALESCE($3, date),
		     image = COALESCE($4, image),
		     content = COALESCE($5, content)
		 WHERE id = $1
		 RETURNING `+blogColumns,
		id, p.Title, p.Date, p.Image, p.Content,
	))
	return b, store.Wrap("update blog", err)
}

func (s *Store) DeleteBlogPost(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return store.Wrap("delete blog", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
