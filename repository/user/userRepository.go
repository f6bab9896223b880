package userrepo

import (
	"context"

	"github.com/Dayo-Adewuyi/Books-API/model"
	"github.com/Dayo-Adewuyi/Books-API/util/database"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, idOrUsername string) (*model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO users(username, password)
		VALUES ($1,$2)
		RETURNING id, created_at`,
		u.Username, u.Password,
	).Scan(&u.ID, &u.CreatedAt)
}

// Get resolves a user by id or username with a single lookup.
func (r *repo) Get(ctx context.Context, idOrUsername string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, username, password, created_at
		FROM users
		WHERE id::text = $1 OR username = $1`,
		idOrUsername,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
