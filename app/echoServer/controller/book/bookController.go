package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	booksvc "eternalink/service/book"
	reviewsvc "eternalink/service/review"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc     booksvc.Service
	Reviews reviewsvc.Service
	V       *validator.Validate
	Log     *slog.Logger
}

// GET /api/books
// @Summary      List books
// @Tags         books
// @Produce      json
// @Success      200  {array}  model.Book
// @Failure      500  {object}  map[string]any
// @Router       /api/books [get]
func (ct *Controller) List(c echo.Context) error {
	books, err := ct.Svc.List(c.Request().Context())
	if err != nil {
		ct.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, books)
}

// GET /api/books/:id
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "Book id"
// @Success      200  {object}  model.Book
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/books/{id} [get]
func (ct *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	b, err := ct.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, booksvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		ct.Log.Error("book detail error", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, b)
}

// POST /api/books/:id/reviews
// @Summary      Add a review
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path  int        true  "Book id"
// @Param        payload  body  ReviewReq  true  "Review payload"
// @Success      201  {object}  model.Review
// @Failure      400  {object}  map[string]any "missing rating or text"
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/books/{id}/reviews [post]
func (ct *Controller) AddReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}

	var req ReviewReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide a rating and review text."})
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide a rating and review text."})
	}

	review, err := ct.Reviews.Add(c.Request().Context(), id, req.User, req.Rating, req.Text)
	if err != nil {
		if errors.Is(err, reviewsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error("add review failed", "err", err, "req_id", rid, "book_id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, review)
}
