package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductSizedNeedsSelection(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)

	resp, body := b.get("/product/5")
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Contains(body, "Select size")
	rq.Contains(body, "US 9.5")
	rq.NotContains(body, "Verified sellers")
}

func TestProductSizeShowsSellers(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)

	resp, body := b.get("/product/5?size=US%209.5")
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Contains(body, "Found 6 verified sellers for size US 9.5")
	rq.Contains(body, "Verified sellers for size US 9.5")
	rq.Contains(body, "Kicks Crew")
	rq.Contains(body, "$385 – $480 across 6 sellers")
	rq.Contains(body, "-9%")

	_, body = b.get("/product/5?size=US%209.5")
	rq.Contains(body, "Found 6 verified sellers")
}

func TestProductUnknownSize(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)

	resp, body := b.get("/product/5?size=US%2015")
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Contains(body, "Select one of the listed sizes")
	rq.NotContains(body, "Verified sellers")
}

func TestProductUnsizedShowsSellers(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)

	_, body := b.get("/product/3")
	rq.Contains(body, "Phantom VIII")
	rq.Contains(body, "$485,000 – $495,000 across 2 sellers")
	rq.Contains(body, "RM Sotheby&#39;s")
}

func TestProductNotFound(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)

	for _, path := range []string{"/product/abc", "/product/999", "/product/0", "/product"} {
		resp, body := b.get(path)
		rq.Equal(http.StatusNotFound, resp.StatusCode, path)
		rq.Contains(body, "This item is no longer available", path)
	}
}

func TestProductWithoutOffersShowsNoPriceData(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t, fixtureProduct(1, "Love Bracelet")).browser(t)

	resp, body := b.get("/product/1")
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Contains(body, "No price data")
	rq.NotContains(body, "$0")
}

func TestPurchaseRedirectsWithNotice(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)
	b.get("/product/5?size=US%2010")

	resp, _ := b.post("/product/5/purchase", url.Values{"seller": {"GOAT"}, "size": {"US 10"}})
	rq.Equal(http.StatusFound, resp.StatusCode)
	rq.Equal("/product/5?size=US+10", resp.Header.Get("Location"))

	_, body := b.get("/product/5?size=US%2010")
	rq.Contains(body, "Redirecting to GOAT for secure checkout...")
}

func TestPurchaseOutOfStock(t *testing.T) {
	rq := require.New(t)
	b := newTestApp(t).browser(t)
	b.get("/product/2")

	resp, _ := b.post("/product/2/purchase", url.Values{"seller": {"Vestiaire Collective"}})
	rq.Equal(http.StatusFound, resp.StatusCode)

	_, body := b.get("/product/2")
	rq.Contains(body, "Vestiaire Collective is out of stock")
	rq.NotContains(body, "secure checkout")
}
