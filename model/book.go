package model

import "time"

type Book struct {
	ID         string    `json:"book_id"`
	Title      string    `json:"title"`
	Authors    []string  `json:"authors"`
	Publisher  string    `json:"publisher"`
	Published  string    `json:"published"`
	Genre      []string  `json:"genre"`
	Summary    *string   `json:"summary,omitempty"`
	CoverImage []byte    `json:"cover_image,omitempty"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
