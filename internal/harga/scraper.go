package harga

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CommodityPrice is one scraped commodity row for a region.
type CommodityPrice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Scraper pulls regional commodity reference prices from a public
// market-price page. The scraped names seed the correction surface's
// suggestion list so user contributions and generator output agree on
// spelling.
type Scraper struct {
	httpClient *http.Client
	baseURL    string
}

// NewScraper creates a new Scraper for the given price page.
func NewScraper(baseURL string) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchRegionPrices fetches and parses the commodity price table for
// one region. Rows without a parseable rupiah amount are skipped.
func (s *Scraper) FetchRegionPrices(ctx context.Context, region string) ([]CommodityPrice, error) {
	reqURL := fmt.Sprintf("%s?wilayah=%s", s.baseURL, url.QueryEscape(region))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price page error: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price page: %w", err)
	}

	var prices []CommodityPrice
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		price, ok := parseRupiah(cells.Eq(1).Text())
		if name == "" || !ok {
			return
		}
		prices = append(prices, CommodityPrice{Name: name, Price: price})
	})

	if len(prices) == 0 {
		return nil, fmt.Errorf("no commodity rows found for %s", region)
	}
	return prices, nil
}

// parseRupiah extracts a numeric amount from strings like
// "Rp 12.500" or "12.500,00".
func parseRupiah(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	// Drop the decimal part; reference prices are whole rupiah.
	if i := strings.IndexAny(raw, ","); i >= 0 {
		raw = raw[:i]
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
