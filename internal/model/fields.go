package model

import "time"

// Field is one stored key of a record, in storage order.
type Field struct {
	Key   string
	Value any
}

// Fields lists every stored key of a record, empty strings included. Only
// a createdAt that was never set is left out.
func (a Appointment) Fields() []Field {
	return present(
		Field{"name", a.Name},
		Field{"phone", a.Phone},
		Field{"date", a.Date},
		Field{"service", a.Service},
		Field{"createdAt", a.CreatedAt},
	)
}

func (m Message) Fields() []Field {
	return present(
		Field{"name", m.Name},
		Field{"email", m.Email},
		Field{"phone", m.Phone},
		Field{"message", m.Message},
		Field{"createdAt", m.CreatedAt},
	)
}

func (b BlogPost) Fields() []Field {
	return present(
		Field{"title", b.Title},
		Field{"date", b.Date},
		Field{"image", b.Image},
		Field{"content", b.Content},
		Field{"createdAt", b.CreatedAt},
	)
}

func present(fields ...Field) []Field {
	out := fields[:0]
	for _, f := range fields {
		if t, ok := f.Value.(time.Time); ok && t.IsZero() {
			continue
		}
		out = append(out, f)
	}
	return out
}
