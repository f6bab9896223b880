package authsvc

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jackc/pgerrcode"

	"github.com/Dayo-Adewuyi/Books-API/model"
	userrepo "github.com/Dayo-Adewuyi/Books-API/repository/user"
	"github.com/Dayo-Adewuyi/Books-API/util/hash"
)

// errors used by controllers

type ErrCode string

const (
	ErrUserExists   ErrCode = "USER_EXISTS"
	ErrUserNotFound ErrCode = "USER_NOT_FOUND"
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Err builds a coded error; exported so callers can simulate service
// failures in tests.
func Err(c ErrCode) error { return makeErr(c) }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// CreateUser registers a username with a hashed password.
	CreateUser(ctx context.Context, username, password string) error

	// GetUser resolves a user by id or username.
	GetUser(ctx context.Context, idOrUsername string) (*model.User, error)

	// ValidateUser checks credentials and returns the public identity.
	ValidateUser(ctx context.Context, username, password string) (*model.User, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur} }

func (s *service) CreateUser(ctx context.Context, username, password string) error {
	// Existence lookup, not a transactional uniqueness guarantee: two
	// concurrent registrations can both pass this check. The unique index
	// catches the loser below.
	if _, err := s.GetUser(ctx, username); err == nil {
		return makeErr(ErrUserExists)
	} else if Code(err) != ErrUserNotFound {
		return err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return err
	}

	u := &model.User{Username: username, Password: hashed}
	if err := s.ur.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return makeErr(ErrUserExists)
		}
		return err
	}
	return nil
}

func (s *service) GetUser(ctx context.Context, idOrUsername string) (*model.User, error) {
	u, err := s.ur.Get(ctx, idOrUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrUserNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (s *service) ValidateUser(ctx context.Context, username, password string) (*model.User, error) {
	// Both failure modes collapse into the same code so callers cannot
	// enumerate usernames.
	u, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.Password, password) {
		return nil, makeErr(ErrInvalidCreds)
	}
	return u.Public(), nil
}
