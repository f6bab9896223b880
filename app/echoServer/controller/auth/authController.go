package auth

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/respond"
	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/validation"
	"github.com/Dayo-Adewuyi/Books-API/model"
	authsvc "github.com/Dayo-Adewuyi/Books-API/service/auth"
	jwtutil "github.com/Dayo-Adewuyi/Books-API/util/jwt"
)

type Controller struct {
	Svc       authsvc.Service
	JWTSecret string
	Log       *slog.Logger
}

// Register a new user
// @Summary      Register user
// @Description  Register a new user with a unique username
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "username already taken"
// @Failure      500  {object}  map[string]any
// @Router       /api/v1/user/register [post]
func (ct *Controller) Register(c echo.Context) error {
	req, ok := c.Get(validation.PayloadKey).(*model.RegisterReq)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
	}

	if err := ct.Svc.CreateUser(c.Request().Context(), req.Username, req.Password); err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrUserExists:
			return echo.NewHTTPError(http.StatusConflict, "User already exists")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
		}
	}

	return respond.Success(c, http.StatusCreated, "User registered successfully", nil)
}

// Login
// @Summary      Login
// @Description  Login with username + password, returns JWT
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/v1/user/login [post]
func (ct *Controller) Login(c echo.Context) error {
	req, ok := c.Get(validation.PayloadKey).(*model.LoginReq)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	u, err := ct.Svc.ValidateUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect username and password combination")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	token, err := jwtutil.Issue(ct.JWTSecret, u.ID, u.Username, 24)
	if err != nil {
		ct.Log.Error("token issue failed", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return respond.Success(c, http.StatusOK, "User logged in successfully", echo.Map{
		"token": token,
		"user":  u,
	})
}
