// Package storetest provides an in-memory store.Store and a conformance
// suite that every backend runs.
package storetest

import (
	"context"
	"slices"
	"sync"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

// Memory is a store.Store backed by slices. Setting Err makes every
// operation fail with a storage fault wrapping it.
type Memory struct {
	mu           sync.Mutex
	appointments []model.Appointment
	messages     []model.Message
	blogs        []model.BlogPost
	openHours    []model.OpenHour

	Err error
}

var _ store.Store = (*Memory)(nil)

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) fail(op string) error {
	if m.Err != nil {
		return store.Wrap(op, m.Err)
	}
	return nil
}

// newestFirst copies s in reverse insertion order.
func newestFirst[T any](s []T) []T {
	out := slices.Clone(s)
	slices.Reverse(out)
	if out == nil {
		out = []T{}
	}
	return out
}

func (m *Memory) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("create appointment"); err != nil {
		return err
	}
	a.ID, a.CreatedAt = store.NewID(), store.Now()
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *Memory) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("list appointments"); err != nil {
		return nil, err
	}
	return newestFirst(m.appointments), nil
}

func (m *Memory) CreateMessage(ctx context.Context, msg *model.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("create message"); err != nil {
		return err
	}
	msg.ID, msg.CreatedAt = store.NewID(), store.Now()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *Memory) ListMessages(ctx context.Context) ([]model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("list messages"); err != nil {
		return nil, err
	}
	return newestFirst(m.messages), nil
}

func (m *Memory) CreateBlogPost(ctx context.Context, b *model.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("create blog"); err != nil {
		return err
	}
	b.ID, b.CreatedAt = store.NewID(), store.Now()
	m.blogs = append(m.blogs, *b)
	return nil
}

func (m *Memory) blogIndex(id string) int {
	return slices.IndexFunc(m.blogs, func(b model.BlogPost) bool { return b.ID == id })
}

func (m *Memory) GetBlogPost(ctx context.Context, id string) (*model.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("get blog"); err != nil {
		return nil, err
	}
	i := m.blogIndex(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	b := m.blogs[i]
	return &b, nil
}

func (m *Memory) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("list blogs"); err != nil {
		return nil, err
	}
	return newestFirst(m.blogs), nil
}

func (m *Memory) UpdateBlogPost(ctx context.Context, id string, p model.BlogPatch) (*model.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("update blog"); err != nil {
		return nil, err
	}
	i := m.blogIndex(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	p.Apply(&m.blogs[i])
	b := m.blogs[i]
	return &b, nil
}

func (m *Memory) DeleteBlogPost(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("delete blog"); err != nil {
		return err
	}
	i := m.blogIndex(id)
	if i < 0 {
		return store.ErrNotFound
	}
	m.blogs = slices.Delete(m.blogs, i, i+1)
	return nil
}

func (m *Memory) ListOpenHours(ctx context.Context) ([]model.OpenHour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("list open hours"); err != nil {
		return nil, err
	}
	out := slices.Clone(m.openHours)
	if out == nil {
		out = []model.OpenHour{}
	}
	return out, nil
}

func (m *Memory) UpsertOpenHour(ctx context.Context, h *model.OpenHour) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("upsert open hour"); err != nil {
		return err
	}
	i := slices.IndexFunc(m.openHours, func(o model.OpenHour) bool { return o.Day == h.Day })
	if i < 0 {
		h.ID = store.NewID()
		m.openHours = append(m.openHours, *h)
		return nil
	}
	m.openHours[i].Open, m.openHours[i].Close = h.Open, h.Close
	*h = m.openHours[i]
	return nil
}

func (m *Memory) ReplaceOpenHour(ctx context.Context, h *model.OpenHour) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("replace open hour"); err != nil {
		return err
	}
	i := slices.IndexFunc(m.openHours, func(o model.OpenHour) bool { return o.ID == h.ID })
	if i < 0 {
		return store.ErrNotFound
	}
	m.openHours[i] = *h
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail("ping")
}

func (m *Memory) Close(ctx context.Context) error { return nil }
