package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/validation"
	"github.com/Dayo-Adewuyi/Books-API/model"
	authsvc "github.com/Dayo-Adewuyi/Books-API/service/auth"
	jwtutil "github.com/Dayo-Adewuyi/Books-API/util/jwt"
)

type mockSvc struct {
	createFn   func(ctx context.Context, username, password string) error
	getFn      func(ctx context.Context, idOrUsername string) (*model.User, error)
	validateFn func(ctx context.Context, username, password string) (*model.User, error)
}

var _ authsvc.Service = (*mockSvc)(nil)

func (m *mockSvc) CreateUser(ctx context.Context, username, password string) error {
	return m.createFn(ctx, username, password)
}

func (m *mockSvc) GetUser(ctx context.Context, idOrUsername string) (*model.User, error) {
	return m.getFn(ctx, idOrUsername)
}

func (m *mockSvc) ValidateUser(ctx context.Context, username, password string) (*model.User, error) {
	return m.validateFn(ctx, username, password)
}

func newController(svc authsvc.Service) *Controller {
	return &Controller{
		Svc:       svc,
		JWTSecret: "test-secret",
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newContext(t *testing.T, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(validation.PayloadKey, payload)
	return c, rec
}

func TestRegister_Success(t *testing.T) {
	svc := &mockSvc{
		createFn: func(ctx context.Context, username, password string) error {
			require.Equal(t, "Jane Doe", username)
			require.Equal(t, "what333i", password)
			return nil
		},
	}
	c, rec := newContext(t, &model.RegisterReq{Username: "Jane Doe", Password: "what333i"})

	require.NoError(t, newController(svc).Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	require.Equal(t, float64(http.StatusCreated), body["statuscode"])
	require.Equal(t, "User registered successfully", body["message"])
}

func TestRegister_Conflict(t *testing.T) {
	svc := &mockSvc{
		createFn: func(ctx context.Context, username, password string) error {
			return authsvc.Err(authsvc.ErrUserExists)
		},
	}
	c, _ := newContext(t, &model.RegisterReq{Username: "Jane Doe", Password: "what333i"})

	err := newController(svc).Register(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusConflict, he.Code)
	require.Equal(t, "User already exists", he.Message)
}

func TestLogin_Success(t *testing.T) {
	svc := &mockSvc{
		validateFn: func(ctx context.Context, username, password string) (*model.User, error) {
			return &model.User{ID: "u-7", Username: "Jane Doe"}, nil
		},
	}
	c, rec := newContext(t, &model.LoginReq{Username: "Jane Doe", Password: "what333i"})

	require.NoError(t, newController(svc).Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				ID       string `json:"id"`
				Username string `json:"username"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Equal(t, "User logged in successfully", body.Message)
	require.Equal(t, "u-7", body.Data.User.ID)
	require.Equal(t, "Jane Doe", body.Data.User.Username)

	claims, err := jwtutil.ParseAuth("JWT "+body.Data.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "u-7", claims["sub"])
	require.Equal(t, "Jane Doe", claims["username"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockSvc{
		validateFn: func(ctx context.Context, username, password string) (*model.User, error) {
			return nil, authsvc.Err(authsvc.ErrInvalidCreds)
		},
	}
	c, _ := newContext(t, &model.LoginReq{Username: "Jane Doe", Password: "wrong"})

	err := newController(svc).Login(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Incorrect username and password combination", he.Message)
}
