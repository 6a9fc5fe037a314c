package search

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	searchsvc "eternalink/service/search"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type mockSvc struct {
	searchFn       func(ctx context.Context, p searchsvc.Params) (*searchsvc.Result, error)
	autocompleteFn func(ctx context.Context, q string) ([]searchsvc.Suggestion, error)
}

func (m *mockSvc) Search(ctx context.Context, p searchsvc.Params) (*searchsvc.Result, error) {
	return m.searchFn(ctx, p)
}

func (m *mockSvc) Autocomplete(ctx context.Context, q string) ([]searchsvc.Suggestion, error) {
	return m.autocompleteFn(ctx, q)
}

func doSearch(t *testing.T, svc searchsvc.Service, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ct := &Controller{Svc: svc, Log: slog.Default()}
	require.NoError(t, ct.Search(c))
	return rec
}

func TestSearch_ParsesAllParams(t *testing.T) {
	var got searchsvc.Params
	svc := &mockSvc{
		searchFn: func(_ context.Context, p searchsvc.Params) (*searchsvc.Result, error) {
			got = p
			return &searchsvc.Result{CurrentPage: p.Page}, nil
		},
	}

	rec := doSearch(t, svc, "/api/search?q=harry&genre=Fantasy&minRating=4.5&maxPrice=15&page=2&limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, "harry", got.Query)
	require.Equal(t, "Fantasy", got.Genre)
	require.NotNil(t, got.MinRating)
	require.Equal(t, 4.5, *got.MinRating)
	require.NotNil(t, got.MaxPrice)
	require.Equal(t, 15.0, *got.MaxPrice)
	require.Equal(t, 2, got.Page)
	require.Equal(t, 3, got.Limit)
}

func TestSearch_DefaultsWhenParamsAbsent(t *testing.T) {
	var got searchsvc.Params
	svc := &mockSvc{
		searchFn: func(_ context.Context, p searchsvc.Params) (*searchsvc.Result, error) {
			got = p
			return &searchsvc.Result{}, nil
		},
	}

	rec := doSearch(t, svc, "/api/search")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, got.Page)
	require.Equal(t, searchsvc.DefaultLimit, got.Limit)
	require.Nil(t, got.MinRating)
	require.Nil(t, got.MaxPrice)
}

func TestSearch_RejectsBadNumbers(t *testing.T) {
	svc := &mockSvc{
		searchFn: func(_ context.Context, _ searchsvc.Params) (*searchsvc.Result, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	for _, target := range []string{
		"/api/search?minRating=abc",
		"/api/search?maxPrice=cheap",
		"/api/search?page=0",
		"/api/search?limit=-1",
	} {
		rec := doSearch(t, svc, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestAutocomplete_PassesQueryThrough(t *testing.T) {
	svc := &mockSvc{
		autocompleteFn: func(_ context.Context, q string) ([]searchsvc.Suggestion, error) {
			require.Equal(t, "dune", q)
			return []searchsvc.Suggestion{{Title: "Dune", URL: "search.html?q=Dune"}}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/search/autocomplete?q=dune", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ct := &Controller{Svc: svc, Log: slog.Default()}
	require.NoError(t, ct.Autocomplete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"title":"Dune","url":"search.html?q=Dune"}]`, rec.Body.String())
}
