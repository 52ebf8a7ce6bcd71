package mongodb

import (
	"time"

	"bizsite-api/internal/model"
)

type appointmentDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Date      string    `bson:"date"`
	Service   string    `bson:"service"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d appointmentDoc) toModel() model.Appointment {
	return model.Appointment{ID: d.ID, Name: d.Name, Phone: d.Phone, Date: d.Date, Service: d.Service, CreatedAt: d.CreatedAt.UTC()}
}

type messageDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d messageDoc) toModel() model.Message {
	return model.Message{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone, Message: d.Message, CreatedAt: d.CreatedAt.UTC()}
}

type blogDoc struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Date      string    `bson:"date"`
	Image     string    `bson:"image"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d blogDoc) toModel() model.BlogPost {
	return model.BlogPost{ID: d.ID, Title: d.Title, Date: d.Date, Image: d.Image, Content: d.Content, CreatedAt: d.CreatedAt.UTC()}
}

type openHourDoc struct {
	ID    string `bson:"_id"`
	Day   string `bson:"day"`
	Open  string `bson:"open"`
	Close string `bson:"close"`
}

func (d openHourDoc) toModel() model.OpenHour {
	return model.OpenHour{ID: d.ID, Day: d.Day, Open: d.Open, Close: d.Close}
}

func models[D interface{ toModel() M }, M any](docs []D) []M {
	out := make([]M, len(docs))
	for i, d := range docs {
		out[i] = d.toModel()
	}
	return out
}
