package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CoverImageKey is where Image stores the uploaded file bytes.
const CoverImageKey = "cover_image"

const maxCoverImageBytes = 5 * 1024 * 1024

// Image enforces the cover-image upload contract: a single cover_image file
// on multipart requests, image/* mimetype only. A non-multipart body that
// smuggles a cover_image field is rejected.
func Image() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contentType := c.Request().Header.Get(echo.HeaderContentType)

			if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
				if bodyHasCoverImage(c) {
					return echo.NewHTTPError(http.StatusBadRequest,
						"Content-Type must be multipart/form-data")
				}
				return next(c)
			}

			fh, err := c.FormFile(CoverImageKey)
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, "file upload error")
			}
			if fh.Size > maxCoverImageBytes {
				return echo.NewHTTPError(http.StatusBadRequest, "cover_image exceeds size limit")
			}
			if !strings.HasPrefix(fh.Header.Get(echo.HeaderContentType), "image/") {
				return echo.NewHTTPError(http.StatusBadRequest, "only image files are allowed")
			}

			f, err := fh.Open()
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "file upload error")
			}
			defer f.Close()
			data, err := io.ReadAll(io.LimitReader(f, maxCoverImageBytes))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "file upload error")
			}

			c.Set(CoverImageKey, data)
			return next(c)
		}
	}
}

// bodyHasCoverImage peeks at a JSON body for a cover_image field and puts
// the bytes back so the Body middleware can still bind them.
func bodyHasCoverImage(c echo.Context) bool {
	req := c.Request()
	if req.Body == nil {
		return false
	}
	raw, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	_, ok := fields[CoverImageKey]
	return ok
}
