// Package respond renders the uniform success envelope
// {status, statuscode, message, data}.
package respond

import "github.com/labstack/echo/v4"

func Success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, echo.Map{
		"status":     "success",
		"statuscode": code,
		"message":    message,
		"data":       data,
	})
}
