package pricecheck

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"laptek/internal/domain/entity"
)

var (
	jsonPricePattern   = regexp.MustCompile(`(?i)"price":\s*"?\$?(\d+\.?\d*)"`)
	dollarPricePattern = regexp.MustCompile(`\$(\d+\.?\d*)`)
)

// Walmart scrapes the walmart.ca search page.
type Walmart struct {
	client  *http.Client
	baseURL string
}

func NewWalmart(client *http.Client, baseURL string) *Walmart {
	return &Walmart{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (w *Walmart) Name() string {
	return "Walmart"
}

func (w *Walmart) Lookup(ctx context.Context, query string) (*entity.CompetitorPrice, error) {
	req, err := newRequest(ctx, w.baseURL+"/search?q="+encodeQuery(query), "")
	if err != nil {
		return nil, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("walmart fetch failed: %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse walmart page: %w", err)
	}

	price, ok := extractPrice(doc)
	if !ok {
		return nil, nil
	}

	return &entity.CompetitorPrice{
		Price: price,
		URL:   "https://www.walmart.ca/search?q=" + encodeQuery(query),
	}, nil
}

// extractPrice prefers an embedded JSON "price" field in script data and falls back
// to the first dollar amount anywhere in the document text.
func extractPrice(doc *html.Node) (float64, bool) {
	var scripts, text strings.Builder
	collectText(doc, false, &scripts, &text)

	for _, source := range []string{scripts.String(), text.String()} {
		if m := jsonPricePattern.FindStringSubmatch(source); m != nil {
			if price, err := strconv.ParseFloat(m[1], 64); err == nil {
				return price, true
			}
		}
	}
	for _, source := range []string{scripts.String(), text.String()} {
		if m := dollarPricePattern.FindStringSubmatch(source); m != nil {
			if price, err := strconv.ParseFloat(m[1], 64); err == nil {
				return price, true
			}
		}
	}
	return 0, false
}

func collectText(n *html.Node, inScript bool, scripts, text *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		inScript = n.Data == "script"
		if n.Data == "style" {
			return
		}
	}

	if n.Type == html.TextNode {
		if inScript {
			scripts.WriteString(n.Data)
			scripts.WriteByte('\n')
		} else {
			text.WriteString(n.Data)
			text.WriteByte(' ')
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, inScript, scripts, text)
	}
}
