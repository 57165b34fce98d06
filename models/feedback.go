package models

import "time"

type Testimonial struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	PostedAt  time.Time `json:"posted_at"`
	IsVisible bool      `json:"is_visible"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
}

type ContactMessage struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	IsRead       bool       `json:"is_read"`
	IsArchived   bool       `json:"is_archived"`
	ResponseText string     `json:"response_text"`
	ResponseAt   *time.Time `json:"response_at"`
	Likes        int        `json:"likes"`
	Dislikes     int        `json:"dislikes"`
}
