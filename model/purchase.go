package model

import "time"

type Purchase struct {
	ID               string    `json:"id"`
	PaymentReference string    `json:"payment_reference"`
	Status           string    `json:"status"`
	UserID           string    `json:"user_id"`
	BookID           string    `json:"book_id"`
	PurchaseDate     time.Time `json:"purchase_date"`
	Quantity         int       `json:"quantity"`
	TotalPrice       int64     `json:"total_price"`
}

// PurchaseRow is the joined projection returned by the transactions listing.
type PurchaseRow struct {
	ID               string    `json:"id"`
	PaymentReference string    `json:"payment_reference"`
	Status           string    `json:"status"`
	PurchaseDate     time.Time `json:"purchase_date"`
	Quantity         int       `json:"quantity"`
	TotalPrice       int64     `json:"total_price"`
	BookTitle        string    `json:"book_title"`
	UserName         string    `json:"user_name"`
}
