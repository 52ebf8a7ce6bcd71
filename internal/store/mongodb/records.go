package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	a.ID, a.CreatedAt = store.NewID(), store.Now()
	doc := appointmentDoc{ID: a.ID, Name: a.Name, Phone: a.Phone, Date: a.Date, Service: a.Service, CreatedAt: a.CreatedAt}
	return store.Wrap("create appointment", s.appointments.insert(ctx, &doc))
}

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	docs, err := s.appointments.findAll(ctx, newestFirst)
	if err != nil {
		return nil, store.Wrap("list appointments", err)
	}
	return models[appointmentDoc, model.Appointment](docs), nil
}

func (s *Store) CreateMessage(ctx context.Context, m *model.Message) error {
	m.ID, m.CreatedAt = store.NewID(), store.Now()
	doc := messageDoc{ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Message: m.Message, CreatedAt: m.CreatedAt}
	return store.Wrap("create message", s.messages.insert(ctx, &doc))
}

func (s *Store) ListMessages(ctx context.Context) ([]model.Message, error) {
	docs, err := s.messages.findAll(ctx, newestFirst)
	if err != nil {
		return nil, store.Wrap("list messages", err)
	}
	return models[messageDoc, model.Message](docs), nil
}

func (s *Store) CreateBlogPost(ctx context.Context, b *model.BlogPost) error {
	b.ID, b.CreatedAt = store.NewID(), store.Now()
	doc := blogDoc{ID: b.ID, Title: b.Title, Date: b.Date, Image: b.Image, Content: b.Content, CreatedAt: b.CreatedAt}
	return store.Wrap("create blog", s.blogs.insert(ctx, &doc))
}

func (s *Store) GetBlogPost(ctx context.Context, id string) (*model.BlogPost, error) {
	doc, err := s.blogs.findByID(ctx, id)
	if err != nil {
		return nil, store.Wrap("get blog", err)
	}
	b := doc.toModel()
	return &b, nil
}

func (s *Store) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	docs, err := s.blogs.findAll(ctx, newestFirst)
	if err != nil {
		return nil, store.Wrap("list blogs", err)
	}
	return models[blogDoc, model.BlogPost](docs), nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, id string, p model.BlogPatch) (*model.BlogPost, error) {
	var set bson.D
	for _, f := range []struct {
		key string
		val *string
	}{{"title", p.Title}, {"date", p.Date}, {"image", p.Image}, {"content", p.Content}} {
		if f.val != nil {
			set = append(set, bson.E{Key: f.key, Value: *f.val})
		}
	}
	doc, err := s.blogs.updateByID(ctx, id, set)
	if err != nil {
		return nil, store.Wrap("update blog", err)
	}
	b := doc.toModel()
	return &b, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id string) error {
	return store.Wrap("delete blog", s.blogs.deleteByID(ctx, id))
}

func (s *Store) ListOpenHours(ctx context.Context) ([]model.OpenHour, error) {
	docs, err := s.openHours.findAll(ctx, nil)
	if err != nil {
		return nil, store.Wrap("list open hours", err)
	}
	return models[openHourDoc, model.OpenHour](docs), nil
}

func (s *Store) UpsertOpenHour(ctx context.Context, h *model.OpenHour) error {
	doc, err := s.openHours.upsert(ctx,
		bson.D{{Key: "day", Value: h.Day}},
		bson.D{{Key: "open", Value: h.Open}, {Key: "close", Value: h.Close}},
		bson.D{{Key: "_id", Value: store.NewID()}},
	)
	if err != nil {
		return store.Wrap("upsert open hour", err)
	}
	*h = doc.toModel()
	return nil
}

func (s *Store) ReplaceOpenHour(ctx context.Context, h *model.OpenHour) error {
	doc, err := s.openHours.updateByID(ctx, h.ID, bson.D{
		{Key: "day", Value: h.Day},
		{Key: "open", Value: h.Open},
		{Key: "close", Value: h.Close},
	})
	if err != nil {
		return store.Wrap("replace open hour", err)
	}
	*h = doc.toModel()
	return nil
}
