package bookrepo

import (
	"context"

	"github.com/Dayo-Adewuyi/Books-API/model"
	"github.com/Dayo-Adewuyi/Books-API/util/database"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	FetchAll(ctx context.Context) ([]model.Book, error)
	Fetch(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const bookColumns = `
	book_id, title, authors, publisher, published::text, genre,
	summary, cover_image, price, created_at, updated_at`

func (r *repo) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO books (title, authors, publisher, published, genre, summary, cover_image, price)
		VALUES ($1,$2,$3,$4::date,$5,$6,$7,$8)
		RETURNING book_id, published::text, created_at, updated_at`,
		b.Title, b.Authors, b.Publisher, b.Published, b.Genre, b.Summary, b.CoverImage, b.Price,
	).Scan(&b.ID, &b.Published, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FetchAll loads the whole table; filtering and pagination happen in the
// service layer.
func (r *repo) FetchAll(ctx context.Context) ([]model.Book, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Authors, &b.Publisher, &b.Published, &b.Genre,
			&b.Summary, &b.CoverImage, &b.Price, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Fetch(ctx context.Context, id string) (*model.Book, error) {
	var b model.Book
	err := r.db.Pool.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE book_id = $1`,
		id,
	).Scan(
		&b.ID, &b.Title, &b.Authors, &b.Publisher, &b.Published, &b.Genre,
		&b.Summary, &b.CoverImage, &b.Price, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	err := r.db.Pool.QueryRow(ctx, `
		UPDATE books
		SET title = $2,
			authors = $3,
			publisher = $4,
			published = $5::date,
			genre = $6,
			summary = $7,
			cover_image = $8,
			price = $9,
			updated_at = NOW()
		WHERE book_id = $1
		RETURNING `+bookColumns,
		b.ID, b.Title, b.Authors, b.Publisher, b.Published, b.Genre, b.Summary, b.CoverImage, b.Price,
	).Scan(
		&b.ID, &b.Title, &b.Authors, &b.Publisher, &b.Published, &b.Genre,
		&b.Summary, &b.CoverImage, &b.Price, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	var deleted string
	return r.db.Pool.QueryRow(ctx, `
		DELETE FROM books
		WHERE book_id = $1
		RETURNING book_id`,
		id,
	).Scan(&deleted)
}
