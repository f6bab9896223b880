package book

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/respond"
	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/validation"
	"github.com/Dayo-Adewuyi/Books-API/model"
	booksvc "github.com/Dayo-Adewuyi/Books-API/service/book"
)

type Controller struct {
	Svc booksvc.Service
	Log *slog.Logger
}

// POST /api/v1/books
func (h *Controller) Create(c echo.Context) error {
	req, ok := c.Get(validation.PayloadKey).(*CreateBookReq)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	b := &model.Book{
		Title:     req.Title,
		Authors:   req.Authors,
		Publisher: req.Publisher,
		Published: req.Published,
		Genre:     req.Genre,
		Price:     req.Price,
	}
	if req.Summary != "" {
		b.Summary = &req.Summary
	}
	if img, ok := c.Get(validation.CoverImageKey).([]byte); ok {
		b.CoverImage = img
	}

	created, err := h.Svc.Create(c.Request().Context(), b)
	if err != nil {
		h.Log.Error("book create error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return respond.Success(c, http.StatusCreated, "Book Created Successfully", created)
}

// GET /api/v1/books
func (h *Controller) List(c echo.Context) error {
	q, ok := c.Get(validation.PayloadKey).(*ListBooksQuery)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	result, err := h.Svc.FetchAll(c.Request().Context(), booksvc.ListOptions{
		Limit:  q.Limit,
		Offset: q.Offset,
		Genre:  q.Genre,
		Author: q.Author,
	})
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return respond.Success(c, http.StatusOK, "Books Fetched Successfully", result)
}

// GET /api/v1/books/:bookId
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("bookId")
	row, err := h.Svc.Fetch(c.Request().Context(), id)
	if err != nil {
		// Internal not-found surfaces as a bad request at the API edge.
		if booksvc.Code(err) == booksvc.ErrBookNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, "Book not found with id: "+id)
		}
		h.Log.Error("book detail error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return respond.Success(c, http.StatusOK, "Book Fetched Successfully", row)
}

// PUT /api/v1/books/:bookId
func (h *Controller) Update(c echo.Context) error {
	id := c.Param("bookId")
	req, ok := c.Get(validation.PayloadKey).(*UpdateBookReq)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	patch := booksvc.Patch{
		Title:     req.Title,
		Authors:   req.Authors,
		Publisher: req.Publisher,
		Published: req.Published,
		Genre:     req.Genre,
		Summary:   req.Summary,
		Price:     req.Price,
	}
	if img, ok := c.Get(validation.CoverImageKey).([]byte); ok {
		patch.CoverImage = img
	}

	updated, err := h.Svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		switch booksvc.Code(err) {
		case booksvc.ErrBookNotFound:
			return echo.NewHTTPError(http.StatusBadRequest, "Book not found with id: "+id)
		case booksvc.ErrUpdateFailed:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update book with id: "+id)
		default:
			h.Log.Error("book update error", "err", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}
	return respond.Success(c, http.StatusOK, "Book Updated Successfully", updated)
}

// DELETE /api/v1/books/:bookId
func (h *Controller) Delete(c echo.Context) error {
	id := c.Param("bookId")
	if _, err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if booksvc.Code(err) == booksvc.ErrBookNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, "Book not found with id: "+id)
		}
		h.Log.Error("book delete error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return respond.Success(c, http.StatusOK, "Books Deleted Successfully", nil)
}
