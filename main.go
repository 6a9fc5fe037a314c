// Package main Eternal Ink API.
//
// @title           Eternal Ink API
// @version         1.0
// @description     Bookstore/blog API (books, reviews, fuzzy search, posts, users).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"eternalink/app/echoServer"
	authctrl "eternalink/app/echoServer/controller/auth"
	bookctrl "eternalink/app/echoServer/controller/book"
	postctrl "eternalink/app/echoServer/controller/post"
	searchctrl "eternalink/app/echoServer/controller/search"
	"eternalink/app/echoServer/validation"
	"eternalink/config"
	bookrepo "eternalink/repository/book"
	postrepo "eternalink/repository/post"
	userrepo "eternalink/repository/user"
	authsvc "eternalink/service/auth"
	booksvc "eternalink/service/book"
	postsvc "eternalink/service/post"
	reviewsvc "eternalink/service/review"
	searchsvc "eternalink/service/search"
	"eternalink/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// stores: flat files by default, Postgres when DATABASE_URL is set,
	// falling back to the files if the database is unreachable
	var br bookrepo.Repo = bookrepo.NewFile(filepath.Join(cfg.DataDir, "books.json"))
	var ur userrepo.Repo = userrepo.NewFile(filepath.Join(cfg.DataDir, "users.json"))
	if cfg.DatabaseURL != "" {
		if err := database.Migrations(cfg.DatabaseURL, cfg.MigratePath); err != nil {
			log.Error("migrations failed, keeping file stores", "err", err)
		} else if db, err := database.New(ctx, cfg.DatabaseURL); err != nil {
			log.Error("db connect failed, keeping file stores", "err", err)
		} else {
			defer db.Close()
			br = bookrepo.NewPG(db.Pool)
			ur = userrepo.NewPG(db.Pool)
		}
	}

	// posts are static: loaded once, read-only for the process lifetime
	pr, err := postrepo.NewFromFile(filepath.Join(cfg.DataDir, "posts.json"))
	if err != nil {
		log.Error("load posts failed", "err", err)
		os.Exit(1)
	}

	// services
	bs := booksvc.New(br)
	rs := reviewsvc.New(br)
	ss := searchsvc.New(br)
	as := authsvc.New(ur)
	ps := postsvc.New(pr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, Reviews: rs, V: v, Log: log}
	searchC := &searchctrl.Controller{Svc: ss, Log: log}
	postC := &postctrl.Controller{Svc: ps, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/", cfg.PublicDir)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		Search: searchC,
		Post:   postC,
	})

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
		return e.Start(":" + cfg.Port)
	})
	group.Go(func() error {
		<-gCtx.Done()
		return e.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil {
		log.Info("server stopped", "reason", err.Error())
	}
}
