package pricecheck

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"laptek/internal/domain/entity"
	"laptek/pkg/logger"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	DefaultWalmartBaseURL = "https://www.walmart.ca"
	DefaultBestBuyBaseURL = "https://www.bestbuy.ca"

	NoPricingDataMessage = "No pricing data found from Walmart or Best Buy Canada. Try a more specific product name."
)

// Source looks up one competitor's price for a free-text query.
// A nil price with a nil error means the source had nothing.
type Source interface {
	Name() string
	Lookup(ctx context.Context, query string) (*entity.CompetitorPrice, error)
}

type Checker struct {
	walmart Source
	bestbuy Source
	timeout time.Duration
}

func NewChecker(walmart, bestbuy Source, timeout time.Duration) *Checker {
	return &Checker{walmart: walmart, bestbuy: bestbuy, timeout: timeout}
}

// NewDefaultChecker wires both scrapers onto a shared HTTP client.
func NewDefaultChecker(walmartBaseURL, bestbuyBaseURL string, timeout time.Duration) *Checker {
	client := &http.Client{Timeout: timeout}
	return NewChecker(
		NewWalmart(client, walmartBaseURL),
		NewBestBuy(client, bestbuyBaseURL),
		timeout,
	)
}

// Check queries both sources concurrently. Source failures are logged and skipped;
// they never fail the whole check.
func (c *Checker) Check(ctx context.Context, query string) *entity.PriceCheckResult {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var walmart, bestbuy *entity.CompetitorPrice
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		walmart = lookup(ctx, c.walmart, query)
		return nil
	})
	g.Go(func() error {
		bestbuy = lookup(ctx, c.bestbuy, query)
		return nil
	})
	_ = g.Wait()

	if walmart == nil && bestbuy == nil {
		return &entity.PriceCheckResult{Success: false, Error: NoPricingDataMessage}
	}

	return &entity.PriceCheckResult{
		Success: true,
		Walmart: walmart,
		BestBuy: bestbuy,
		Demand:  "Medium",
	}
}

func lookup(ctx context.Context, source Source, query string) *entity.CompetitorPrice {
	if source == nil {
		return nil
	}

	price, err := source.Lookup(ctx, query)
	if err != nil {
		logger.LogExternalError(source.Name(), "price lookup", err)
		return nil
	}
	if price == nil {
		logger.Info("[%s] No price found for %q", source.Name(), query)
	}
	return price
}

// encodeQuery matches encodeURIComponent: spaces become %20, not '+'.
func encodeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

func newRequest(ctx context.Context, rawURL, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return req, nil
}
