package model

import "time"

type Appointment struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Service   string    `json:"service"`
	CreatedAt time.Time `json:"createdAt"`
}

type Message struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogPost struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Image     string    `json:"image"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogSummary is the listing projection of a BlogPost.
type BlogSummary struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Content string `json:"content"`
}

func (b *BlogPost) Summary() BlogSummary {
	return BlogSummary{ID: b.ID, Title: b.Title, Date: b.Date, Image: b.Image, Content: b.Content}
}

// BlogPatch carries the fields of a merge update. Nil fields are left alone.
type BlogPatch struct {
	Title   *string
	Date    *string
	Image   *string
	Content *string
}

func (p BlogPatch) Empty() bool {
	return p.Title == nil && p.Date == nil && p.Image == nil && p.Content == nil
}

// Apply merges the patch into b.
func (p BlogPatch) Apply(b *BlogPost) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
}

type OpenHour struct {
	ID    string `json:"_id"`
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}
