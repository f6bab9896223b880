package echoServer

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	authctrl "github.com/Dayo-Adewuyi/Books-API/app/echoServer/controller/auth"
	bookctrl "github.com/Dayo-Adewuyi/Books-API/app/echoServer/controller/book"
	purchasectrl "github.com/Dayo-Adewuyi/Books-API/app/echoServer/controller/purchase"
	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/validation"
	"github.com/Dayo-Adewuyi/Books-API/model"
	authsvc "github.com/Dayo-Adewuyi/Books-API/service/auth"
	booksvc "github.com/Dayo-Adewuyi/Books-API/service/book"
)

type C struct {
	Auth     *authctrl.Controller
	Book     *bookctrl.Controller
	Purchase *purchasectrl.Controller

	// services backing the existence checks
	AuthSvc authsvc.Service
	BookSvc booksvc.Service

	V         *validator.Validate
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/api/v1")

	// Public
	user := v1.Group("/user")
	user.POST("/register", c.Auth.Register,
		validation.Body(c.V, func() any { return new(model.RegisterReq) }))
	user.POST("/login", c.Auth.Login,
		validation.Body(c.V, func() any { return new(model.LoginReq) }))

	// Protected. Tokens travel as "Authorization: JWT <token>".
	books := v1.Group("/books")
	books.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "header:Authorization:JWT ",
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return jwt.MapClaims{}
		},
	}))

	checkBook := validation.ExistenceCheck{
		Param: "bookId",
		Check: func(ctx context.Context, id string) bool {
			_, err := c.BookSvc.Fetch(ctx, id)
			return err == nil
		},
		Message: "Book not found",
	}
	checkUser := validation.ExistenceCheck{
		Param: "userId",
		Check: func(ctx context.Context, id string) bool {
			_, err := c.AuthSvc.GetUser(ctx, id)
			return err == nil
		},
		Message: "User not found",
	}

	books.POST("", c.Book.Create,
		validation.Image(),
		validation.Body(c.V, func() any { return new(bookctrl.CreateBookReq) }))
	books.GET("", c.Book.List,
		validation.Query(c.V, func() any { return new(bookctrl.ListBooksQuery) }))
	books.GET("/:bookId", c.Book.Detail,
		validation.Params(checkBook))
	books.PUT("/:bookId", c.Book.Update,
		validation.Image(),
		validation.Params(checkBook),
		validation.Body(c.V, func() any { return new(bookctrl.UpdateBookReq) }))
	books.DELETE("/:bookId", c.Book.Delete,
		validation.Params(checkBook))

	books.POST("/buy/:bookId", c.Purchase.Buy,
		validation.Params(checkBook),
		validation.Body(c.V, func() any { return new(purchasectrl.BuyBookReq) }))
	books.GET("/transactions/:userId", c.Purchase.History,
		validation.Params(checkUser))
}
