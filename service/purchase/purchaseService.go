package purchasesvc

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/Dayo-Adewuyi/Books-API/model"
	paystackrepo "github.com/Dayo-Adewuyi/Books-API/repository/paystack"
	purchaserepo "github.com/Dayo-Adewuyi/Books-API/repository/purchase"
)

type ErrCode string

const (
	ErrCreateFailed ErrCode = "PURCHASE_CREATE_FAILED"
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

// BookFetcher is the slice of the book service the purchase flow needs.
type BookFetcher interface {
	Fetch(ctx context.Context, id string) (*model.Book, error)
}

type Service interface {
	// Create prices the purchase, initializes payment at the gateway and
	// persists the purchase row carrying the gateway reference.
	Create(ctx context.Context, userID, bookID string, quantity int) (*paystackrepo.InitializeResp, error)

	// History lists a user's purchases joined with book title and username.
	History(ctx context.Context, userID string) ([]model.PurchaseRow, error)
}

type service struct {
	books BookFetcher
	pr    purchaserepo.Repo
	gw    paystackrepo.Repo
}

func New(books BookFetcher, pr purchaserepo.Repo, gw paystackrepo.Repo) Service {
	return &service{books: books, pr: pr, gw: gw}
}

func (s *service) Create(ctx context.Context, userID, bookID string, quantity int) (*paystackrepo.InitializeResp, error) {
	// Missing book fails here, before any gateway traffic.
	book, err := s.books.Fetch(ctx, bookID)
	if err != nil {
		return nil, err
	}

	total := totalPrice(book.Price, quantity)

	init, err := s.gw.Initialize(ctx, userID, strconv.FormatInt(total, 10))
	if err != nil {
		return nil, err
	}

	// The insert is not compensated: if it fails after a successful
	// initialize, the payment intent is orphaned.
	p := &model.Purchase{
		PaymentReference: init.Reference,
		UserID:           userID,
		BookID:           bookID,
		Quantity:         quantity,
		TotalPrice:       total,
	}
	if _, err := s.pr.Create(ctx, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrCreateFailed)
		}
		return nil, err
	}

	return init, nil
}

func (s *service) History(ctx context.Context, userID string) ([]model.PurchaseRow, error) {
	rows, err := s.pr.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.PurchaseRow{}
	}
	return rows, nil
}

// totalPrice scales the major-unit price into minor units. price is assumed
// to be stored in major units; do not change without confirming the currency
// representation.
func totalPrice(price float64, quantity int) int64 {
	return int64(math.Round(price * 100 * float64(quantity)))
}
