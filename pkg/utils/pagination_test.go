package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{name: "defaults", query: "", want: PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{name: "third page", query: "?page=3&limit=10", want: PaginationParams{Page: 3, PageSize: 10, Offset: 20}},
		{name: "oversized limit", query: "?limit=500", want: PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{name: "garbage", query: "?page=x&limit=-4", want: PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, GetPaginationParams(c))
		})
	}
}
