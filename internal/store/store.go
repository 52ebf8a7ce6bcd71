// Package store defines the record store used by the HTTP handlers. The
// backends live in the mongodb and postgres subpackages; backend.Open picks
// one from the connection string.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"bizsite-api/internal/model"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("not found")

// Error is a storage-layer fault. It never wraps ErrNotFound.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with the failing operation. Nil and ErrNotFound pass through.
func Wrap(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

type Store interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context) ([]model.Appointment, error)

	CreateMessage(ctx context.Context, m *model.Message) error
	ListMessages(ctx context.Context) ([]model.Message, error)

	CreateBlogPost(ctx context.Context, b *model.BlogPost) error
	GetBlogPost(ctx context.Context, id string) (*model.BlogPost, error)
	ListBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, p model.BlogPatch) (*model.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error

	ListOpenHours(ctx context.Context) ([]model.OpenHour, error)
	// UpsertOpenHour stores h under its Day, replacing open/close of an
	// existing record for that day. h.ID is set to the stored record's id.
	UpsertOpenHour(ctx context.Context, h *model.OpenHour) error
	ReplaceOpenHour(ctx context.Context, h *model.OpenHour) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// NewID returns a time-ordered record id, so ids of records created in the
// same millisecond still sort by insertion.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Now is the creation timestamp at the precision every backend keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
