package purchaserepo

import (
	"context"

	"github.com/Dayo-Adewuyi/Books-API/model"
	"github.com/Dayo-Adewuyi/Books-API/util/database"
)

type Repo interface {
	Create(ctx context.Context, p *model.Purchase) (string, error)
	ListByUser(ctx context.Context, userID string) ([]model.PurchaseRow, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, p *model.Purchase) (string, error) {
	var id string
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO purchases (payment_reference, user_id, book_id, quantity, total_price)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		p.PaymentReference, p.UserID, p.BookID, p.Quantity, p.TotalPrice,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]model.PurchaseRow, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT
			p.id,
			p.payment_reference,
			p.status,
			p.purchase_date,
			p.quantity,
			p.total_price,
			b.title    AS book_title,
			u.username AS user_name
		FROM purchases p
		JOIN books b ON p.book_id = b.book_id
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PurchaseRow
	for rows.Next() {
		var h model.PurchaseRow
		if err := rows.Scan(
			&h.ID, &h.PaymentReference, &h.Status, &h.PurchaseDate,
			&h.Quantity, &h.TotalPrice, &h.BookTitle, &h.UserName,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
