package pricecheck

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"laptek/internal/domain/entity"
)

func newWalmartServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newBestBuyServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/json/search", r.URL.Path)
		assert.Equal(t, "en-CA", r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		price float64
		ok    bool
	}{
		{"json price in script", `<html><body><span>$5.00</span><script>{"price": "1299.99"}</script></body></html>`, 1299.99, true},
		{"dollar text fallback", `<html><body><p>Now only $849.50!</p></body></html>`, 849.5, true},
		{"style ignored", `<html><head><style>.a{content:"$1"}</style></head><body>none</body></html>`, 0, false},
		{"nothing", `<html><body>sold out</body></html>`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader(tt.page))
			require.NoError(t, err)

			price, ok := extractPrice(doc)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.price, price)
		})
	}
}

func TestChecker_BothSources(t *testing.T) {
	walmart := newWalmartServer(t, `<script>window.__DATA__={"price":"1449.00"}</script>`, http.StatusOK)
	bestbuy := newBestBuyServer(t, `{"products":[{"salePrice":0,"regularPrice":1499.99}]}`, http.StatusOK)

	checker := NewDefaultChecker(walmart.URL, bestbuy.URL, 5*time.Second)
	result := checker.Check(context.Background(), "Dell XPS 13")

	require.True(t, result.Success)
	assert.Equal(t, &entity.CompetitorPrice{Price: 1449, URL: "https://www.walmart.ca/search?q=Dell%20XPS%2013"}, result.Walmart)
	assert.Equal(t, &entity.CompetitorPrice{Price: 1499.99, URL: "https://www.bestbuy.ca/en-ca/search?search=Dell%20XPS%2013"}, result.BestBuy)
	assert.Equal(t, "Medium", result.Demand)
}

func TestChecker_OneSourceFails(t *testing.T) {
	walmart := newWalmartServer(t, "blocked", http.StatusForbidden)
	bestbuy := newBestBuyServer(t, `{"products":[{"salePrice":329.99}]}`, http.StatusOK)

	result := NewDefaultChecker(walmart.URL, bestbuy.URL, 5*time.Second).Check(context.Background(), "WH-1000XM5")

	require.True(t, result.Success)
	assert.Nil(t, result.Walmart)
	assert.Equal(t, 329.99, result.BestBuy.Price)
}

func TestChecker_NoPrices(t *testing.T) {
	walmart := newWalmartServer(t, "<html><body>no results</body></html>", http.StatusOK)
	bestbuy := newBestBuyServer(t, `{"products":[]}`, http.StatusOK)

	result := NewDefaultChecker(walmart.URL, bestbuy.URL, 5*time.Second).Check(context.Background(), "zzz")

	assert.False(t, result.Success)
	assert.Equal(t, NoPricingDataMessage, result.Error)
	assert.Nil(t, result.Walmart)
	assert.Nil(t, result.BestBuy)
}

func TestChecker_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	start := time.Now()
	result := NewDefaultChecker(slow.URL, slow.URL, 100*time.Millisecond).Check(context.Background(), "anything")

	assert.False(t, result.Success)
	assert.Less(t, time.Since(start), time.Second)
}
