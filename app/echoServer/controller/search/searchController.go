package search

import (
	"log/slog"
	"net/http"
	"strconv"

	searchsvc "eternalink/service/search"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc searchsvc.Service
	Log *slog.Logger
}

// GET /api/search
// @Summary      Search books
// @Description  Fuzzy title/author match with genre, rating and price filters, paginated
// @Tags         search
// @Produce      json
// @Param        q          query  string  false  "Free-text query"
// @Param        genre      query  string  false  "Exact genre filter"
// @Param        minRating  query  number  false  "Inclusive minimum rating"
// @Param        maxPrice   query  number  false  "Inclusive maximum final price"
// @Param        page       query  int     false  "1-indexed page"  default(1)
// @Param        limit      query  int     false  "Page size"  default(6)
// @Success      200  {object}  searchsvc.Result
// @Failure      400  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/search [get]
func (ct *Controller) Search(c echo.Context) error {
	p := searchsvc.Params{
		Query: c.QueryParam("q"),
		Genre: c.QueryParam("genre"),
		Page:  1,
		Limit: searchsvc.DefaultLimit,
	}

	if v := c.QueryParam("minRating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid minRating"})
		}
		p.MinRating = &f
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid maxPrice"})
		}
		p.MaxPrice = &f
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid page"})
		}
		p.Page = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid limit"})
		}
		p.Limit = n
	}

	res, err := ct.Svc.Search(c.Request().Context(), p)
	if err != nil {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error("search failed", "err", err, "req_id", rid, "q", p.Query)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error during search",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, res)
}

// GET /api/search/autocomplete
// @Summary      Autocomplete suggestions
// @Description  Top 5 fuzzy matches as prebuilt search links; empty query returns []
// @Tags         search
// @Produce      json
// @Param        q  query  string  false  "Free-text query"
// @Success      200  {array}  searchsvc.Suggestion
// @Failure      500  {object}  map[string]any
// @Router       /api/search/autocomplete [get]
func (ct *Controller) Autocomplete(c echo.Context) error {
	suggestions, err := ct.Svc.Autocomplete(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error("autocomplete failed", "err", err, "req_id", rid)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error during autocomplete",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, suggestions)
}
