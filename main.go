// Package main books API.
//
// @title           Books API
// @version         1.0
// @description     Bookstore backend (users, catalog, purchases).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  JWT <token>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Dayo-Adewuyi/Books-API/app/echoServer"
	authctrl "github.com/Dayo-Adewuyi/Books-API/app/echoServer/controller/auth"
	bookctrl "github.com/Dayo-Adewuyi/Books-API/app/echoServer/controller/book"
	purchasectrl "github.com/Dayo-Adewuyi/Books-API/app/echoServer/controller/purchase"
	"github.com/Dayo-Adewuyi/Books-API/app/echoServer/validation"
	"github.com/Dayo-Adewuyi/Books-API/config"
	bookrepo "github.com/Dayo-Adewuyi/Books-API/repository/book"
	paystackrepo "github.com/Dayo-Adewuyi/Books-API/repository/paystack"
	purchaserepo "github.com/Dayo-Adewuyi/Books-API/repository/purchase"
	userrepo "github.com/Dayo-Adewuyi/Books-API/repository/user"
	authsvc "github.com/Dayo-Adewuyi/Books-API/service/auth"
	booksvc "github.com/Dayo-Adewuyi/Books-API/service/book"
	purchasesvc "github.com/Dayo-Adewuyi/Books-API/service/purchase"
	"github.com/Dayo-Adewuyi/Books-API/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	br := bookrepo.New(db)
	pr := purchaserepo.New(db)

	var gw paystackrepo.Repo
	if cfg.IsTest() {
		gw = paystackrepo.NewStub()
	} else {
		gw = paystackrepo.NewHTTP(cfg.PaystackURL, cfg.PaystackKey, cfg.PaystackEmail)
	}

	// services
	as := authsvc.New(ur)
	bs := booksvc.New(br)
	ps := purchasesvc.New(bs, pr, gw)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, JWTSecret: cfg.JWTSecret, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, Log: log}
	purchaseC := &purchasectrl.Controller{Svc: ps, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()
	e.HTTPErrorHandler = echoServer.NewHTTPErrorHandler(cfg.IsProduction(), log)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Book:     bookC,
		Purchase: purchaseC,

		AuthSvc: as,
		BookSvc: bs,

		V:         v,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
