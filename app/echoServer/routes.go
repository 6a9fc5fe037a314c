package echoServer

import (
	"net/http"

	"eternalink/app/echoServer/controller/auth"
	"eternalink/app/echoServer/controller/book"
	"eternalink/app/echoServer/controller/post"
	"eternalink/app/echoServer/controller/search"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth   *auth.Controller
	Book   *book.Controller
	Search *search.Controller
	Post   *post.Controller
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	api.GET("/test", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"message": "Welcome to the Eternal Ink API!"})
	})

	api.POST("/auth/register", c.Auth.Register)
	api.POST("/auth/login", c.Auth.Login)

	api.GET("/users/profile", c.Auth.Profile)

	api.GET("/books", c.Book.List)
	api.GET("/books/:id", c.Book.Detail)
	api.POST("/books/:id/reviews", c.Book.AddReview)

	api.GET("/posts", c.Post.List)
	api.GET("/posts/:id", c.Post.Detail)

	api.GET("/search", c.Search.Search)
	api.GET("/search/autocomplete", c.Search.Autocomplete)
}
