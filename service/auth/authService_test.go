package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Dayo-Adewuyi/Books-API/model"
	userrepo "github.com/Dayo-Adewuyi/Books-API/repository/user"
	"github.com/Dayo-Adewuyi/Books-API/util/hash"
)

type mockRepo struct {
	getFn    func(ctx context.Context, idOrUsername string) (*model.User, error)
	createFn func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Get(ctx context.Context, idOrUsername string) (*model.User, error) {
	if m.getFn == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getFn(ctx, idOrUsername)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

// --- tests ---

func TestCreateUser_Success(t *testing.T) {
	ctx := context.Background()
	var created *model.User
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = "5f0dd02c-5cc5-4d66-8c0e-a5e0d2a0a3d7"
			created = u
			return nil
		},
	}
	svc := New(m)

	err := svc.CreateUser(ctx, "Jane Doe", "what333i")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "Jane Doe", created.Username)
	require.NotEqual(t, "what333i", created.Password)
	require.True(t, hash.Check(created.Password, "what333i"))
}

func TestCreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		getFn: func(ctx context.Context, idOrUsername string) (*model.User, error) {
			return &model.User{ID: "u-1", Username: idOrUsername}, nil
		},
	}
	svc := New(m)

	err := svc.CreateUser(ctx, "Jane Doe", "what333i")
	require.Error(t, err)
	require.Equal(t, ErrUserExists, Code(err))
}

func TestCreateUser_UniqueViolationMapsToConflict(t *testing.T) {
	// The racing registration that slips past the lookup still surfaces
	// as the same conflict code.
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		},
	}
	svc := New(m)

	err := svc.CreateUser(ctx, "Jane Doe", "what333i")
	require.Error(t, err)
	require.Equal(t, ErrUserExists, Code(err))
}

func TestCreateUser_RepoError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		getFn: func(ctx context.Context, idOrUsername string) (*model.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := New(m)

	err := svc.CreateUser(ctx, "Jane Doe", "what333i")
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestGetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	_, err := svc.GetUser(ctx, "missing")
	require.Error(t, err)
	require.Equal(t, ErrUserNotFound, Code(err))
}

func TestValidateUser_Success(t *testing.T) {
	ctx := context.Background()
	hashed, err := hash.HashPassword("what333i")
	require.NoError(t, err)

	m := &mockRepo{
		getFn: func(ctx context.Context, idOrUsername string) (*model.User, error) {
			return &model.User{ID: "u-7", Username: "Jane Doe", Password: hashed}, nil
		},
	}
	svc := New(m)

	u, err := svc.ValidateUser(ctx, "Jane Doe", "what333i")
	require.NoError(t, err)
	require.Equal(t, "u-7", u.ID)
	require.Equal(t, "Jane Doe", u.Username)
	require.Empty(t, u.Password)
}

func TestValidateUser_UnknownUserAndWrongPasswordShareCode(t *testing.T) {
	ctx := context.Background()

	unknown := New(&mockRepo{})
	_, errUnknown := unknown.ValidateUser(ctx, "nobody", "whatever")

	hashed, err := hash.HashPassword("correct-password")
	require.NoError(t, err)
	wrongPw := New(&mockRepo{
		getFn: func(ctx context.Context, idOrUsername string) (*model.User, error) {
			return &model.User{ID: "u-1", Username: idOrUsername, Password: hashed}, nil
		},
	})
	_, errWrong := wrongPw.ValidateUser(ctx, "Jane Doe", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	require.Equal(t, ErrInvalidCreds, Code(errUnknown))
	require.Equal(t, ErrInvalidCreds, Code(errWrong))
	require.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrUserExists, Code(makeErr(ErrUserExists)))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
