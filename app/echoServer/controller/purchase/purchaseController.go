package purchase

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/jwtx"
	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/respond"
	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/validation"
	booksvc "github.com/Dayo-Adewuyi/Books-API/service/book"
	purchasesvc "github.com/Dayo-Adewuyi/Books-API/service/purchase"
)

type Controller struct {
	Svc purchasesvc.Service
	Log *slog.Logger
}

// POST /api/v1/books/buy/:bookId
func (h *Controller) Buy(c echo.Context) error {
	userID, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	req, ok := c.Get(validation.PayloadKey).(*BuyBookReq)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	bookID := c.Param("bookId")

	init, err := h.Svc.Create(c.Request().Context(), userID, bookID, req.Quantity)
	if err != nil {
		switch {
		case booksvc.Code(err) == booksvc.ErrBookNotFound:
			return echo.NewHTTPError(http.StatusBadRequest, "Book not found with id: "+bookID)
		case purchasesvc.Code(err) == purchasesvc.ErrCreateFailed:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create purchase")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			h.Log.Error("buy book error", "err", err, "req_id", rid, "book_id", bookID)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}
	return respond.Success(c, http.StatusOK, "Payment Initiated Successfully", init)
}

// GET /api/v1/books/transactions/:userId
func (h *Controller) History(c echo.Context) error {
	userID := c.Param("userId")
	rows, err := h.Svc.History(c.Request().Context(), userID)
	if err != nil {
		h.Log.Error("purchase history error", "err", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return respond.Success(c, http.StatusOK, "Purchases Fetched Successfully", rows)
}
