package echoServer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

const fallbackMessage = "We encountered a problem while processing your request. Please try again"

// NewHTTPErrorHandler funnels every uncaught error into the error envelope.
// Diagnostic detail is included only outside production.
func NewHTTPErrorHandler(production bool, log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := fallbackMessage

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}

		body := echo.Map{
			"status":  "error",
			"message": msg,
		}
		if code >= http.StatusInternalServerError {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Error("request failed",
				"err", err,
				"req_id", rid,
				"method", c.Request().Method,
				"path", c.Path(),
			)
			if !production {
				body["errors"] = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}
