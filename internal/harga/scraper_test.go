package harga

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRegionPrices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("wilayah") != "Kota Bandung" {
			http.NotFound(w, r)
			return
		}
		html := `
		<html><body>
			<h1>Harga Pangan Kota Bandung</h1>
			<table>
				<tr><th>Komoditas</th><th>Harga</th></tr>
				<tr><td>Beras</td><td>Rp 13.500</td></tr>
				<tr><td>Telur Ayam</td><td>Rp 28.000,00</td></tr>
				<tr><td>Tanpa Harga</td><td>-</td></tr>
				<tr><td></td><td>Rp 5.000</td></tr>
			</table>
		</body></html>`
		w.Write([]byte(html))
	}))
	defer ts.Close()

	t.Run("ParsesCommodityRows", func(t *testing.T) {
		s := NewScraper(ts.URL)
		prices, err := s.FetchRegionPrices(context.Background(), "Kota Bandung")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(prices) != 2 {
			t.Fatalf("Expected 2 rows, got %d: %+v", len(prices), prices)
		}
		if prices[0].Name != "Beras" || prices[0].Price != 13500 {
			t.Errorf("Unexpected first row: %+v", prices[0])
		}
		if prices[1].Name != "Telur Ayam" || prices[1].Price != 28000 {
			t.Errorf("Unexpected second row: %+v", prices[1])
		}
	})

	t.Run("UnknownRegionFails", func(t *testing.T) {
		s := NewScraper(ts.URL)
		if _, err := s.FetchRegionPrices(context.Background(), "Kota Hilang"); err == nil {
			t.Fatal("Expected an error for a missing page")
		}
	})
}

func TestParseRupiah(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"Rp 12.500", 12500, true},
		{"12.500,00", 12500, true},
		{"28000", 28000, true},
		{" Rp   1.000 ", 1000, true},
		{"-", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseRupiah(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseRupiah(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
