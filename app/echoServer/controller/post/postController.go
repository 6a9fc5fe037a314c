package post

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	postsvc "eternalink/service/post"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc postsvc.Service
	Log *slog.Logger
}

// GET /api/posts
// @Summary      List blog posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  model.PostSummary
// @Router       /api/posts [get]
func (ct *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, ct.Svc.List())
}

// GET /api/posts/:id
// @Summary      Get a blog post by id
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      200  {object}  model.Post
// @Failure      404  {object}  map[string]any
// @Router       /api/posts/{id} [get]
func (ct *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Post not found in the ancient library."})
	}
	p, err := ct.Svc.Get(id)
	if err != nil {
		if errors.Is(err, postsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Post not found in the ancient library."})
		}
		ct.Log.Error("post detail error", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, p)
}
