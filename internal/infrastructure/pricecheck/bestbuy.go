package pricecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"laptek/internal/domain/entity"
)

// BestBuy queries the bestbuy.ca JSON search endpoint.
type BestBuy struct {
	client  *http.Client
	baseURL string
}

func NewBestBuy(client *http.Client, baseURL string) *BestBuy {
	return &BestBuy{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type bestBuySearchResponse struct {
	Products []struct {
		SalePrice    float64 `json:"salePrice"`
		RegularPrice float64 `json:"regularPrice"`
	} `json:"products"`
}

func (b *BestBuy) Name() string {
	return "Best Buy"
}

func (b *BestBuy) Lookup(ctx context.Context, query string) (*entity.CompetitorPrice, error) {
	rawURL := b.baseURL + "/api/v2/json/search?query=" + encodeQuery(query) + "&lang=en-CA"
	req, err := newRequest(ctx, rawURL, "application/json")
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("best buy fetch failed: %d", resp.StatusCode)
	}

	var body bestBuySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode best buy response: %w", err)
	}
	if len(body.Products) == 0 {
		return nil, nil
	}

	price := body.Products[0].SalePrice
	if price == 0 {
		price = body.Products[0].RegularPrice
	}
	if price == 0 {
		return nil, nil
	}

	return &entity.CompetitorPrice{
		Price: price,
		URL:   "https://www.bestbuy.ca/en-ca/search?search=" + encodeQuery(query),
	}, nil
}
