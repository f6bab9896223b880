package validation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PayloadKey is where Body/Query middleware stores the validated DTO.
const PayloadKey = "payload"

// ExistenceCheck confirms a referenced entity exists before the handler runs.
type ExistenceCheck struct {
	Param   string
	Check   func(ctx context.Context, value string) bool
	Message string
}

// Body binds and validates the request payload before the controller runs,
// so a failing request short-circuits with no side effects.
func Body(v *validator.Validate, factory func() any) echo.MiddlewareFunc {
	return bind(v, factory)
}

// Query is Body for query-string DTOs; echo's binder reads the query
// string for GET requests.
func Query(v *validator.Validate, factory func() any) echo.MiddlewareFunc {
	return bind(v, factory)
}

func bind(v *validator.Validate, factory func() any) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			payload := factory()
			if err := c.Bind(payload); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
			}
			if err := v.Struct(payload); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			c.Set(PayloadKey, payload)
			return next(c)
		}
	}
}

// Params checks that each named route param is a UUID and, when a Check is
// supplied, that the referenced entity exists. Failures map to 400.
func Params(checks ...ExistenceCheck) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, chk := range checks {
				value := c.Param(chk.Param)
				if _, err := uuid.Parse(value); err != nil {
					return echo.NewHTTPError(http.StatusBadRequest,
						fmt.Sprintf("%s must be a valid uuid", chk.Param))
				}
				if chk.Check != nil && !chk.Check(c.Request().Context(), value) {
					msg := chk.Message
					if msg == "" {
						msg = fmt.Sprintf("%s %s not found", chk.Param, value)
					}
					return echo.NewHTTPError(http.StatusBadRequest, msg)
				}
			}
			return next(c)
		}
	}
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "validation error"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Param() != "" {
		return fmt.Sprintf("%s fails on %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s is %s", field, fe.Tag())
}
