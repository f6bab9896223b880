package booksvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Dayo-Adewuyi/Books-API/model"
	bookrepo "github.com/Dayo-Adewuyi/Books-API/repository/book"
)

type ErrCode string

const (
	ErrBookNotFound ErrCode = "BOOK_NOT_FOUND"
	ErrUpdateFailed ErrCode = "UPDATE_FAILED"
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

const (
	defaultLimit  = 10
	defaultOffset = 0
)

type ListOptions struct {
	Limit  int
	Offset int
	Genre  string
	Author string
}

type ListResult struct {
	Data  []model.Book `json:"data"`
	Total int          `json:"total"`
}

// Patch carries a partial update; nil fields keep their current values.
type Patch struct {
	Title      *string
	Authors    []string
	Publisher  *string
	Published  *string
	Genre      []string
	Summary    *string
	CoverImage []byte
	Price      *float64
}

type Service interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// FetchAll loads the whole catalog and filters/paginates in memory.
	// Known limitation: O(n) per request.
	FetchAll(ctx context.Context, opts ListOptions) (*ListResult, error)

	Fetch(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, id string, patch Patch) (*model.Book, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type service struct{ r bookrepo.Repo }

func New(r bookrepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	return s.r.Create(ctx, b)
}

func (s *service) FetchAll(ctx context.Context, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = defaultOffset
	}

	books, err := s.r.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := books
	if opts.Genre != "" || opts.Author != "" {
		filtered = filterBooks(books, opts.Genre, opts.Author)
	}

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]model.Book, 0, end-offset)
	page = append(page, filtered[offset:end]...)

	return &ListResult{Data: page, Total: total}, nil
}

func (s *service) Fetch(ctx context.Context, id string) (*model.Book, error) {
	b, err := s.r.Fetch(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrBookNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id string, patch Patch) (*model.Book, error) {
	existing, err := s.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergePatch(existing, patch)
	updated, err := s.r.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrUpdateFailed)
		}
		return nil, err
	}
	return updated, nil
}

// Delete fetches first so a missing id fails before any delete statement.
func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := s.Fetch(ctx, id); err != nil {
		return false, err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// filterBooks applies case-insensitive exact-match on genre and
// case-insensitive substring match on authors, AND-ed together.
func filterBooks(books []model.Book, genre, author string) []model.Book {
	author = strings.ToLower(author)

	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if genre != "" && !containsFold(b.Genre, genre) {
			continue
		}
		if author != "" && !containsSubstringFold(b.Authors, author) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func containsSubstringFold(list []string, wantLower string) bool {
	for _, v := range list {
		if strings.Contains(strings.ToLower(v), wantLower) {
			return true
		}
	}
	return false
}

func mergePatch(existing *model.Book, p Patch) *model.Book {
	merged := *existing
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Authors != nil {
		merged.Authors = p.Authors
	}
	if p.Publisher != nil {
		merged.Publisher = *p.Publisher
	}
	if p.Published != nil {
		merged.Published = *p.Published
	}
	if p.Genre != nil {
		merged.Genre = p.Genre
	}
	if p.Summary != nil {
		merged.Summary = p.Summary
	}
	if p.CoverImage != nil {
		merged.CoverImage = p.CoverImage
	}
	if p.Price != nil {
		merged.Price = *p.Price
	}
	return &merged
}
