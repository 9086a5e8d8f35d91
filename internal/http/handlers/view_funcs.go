package handlers

import (
	"math"

	"github.com/dustin/go-humanize"

	"luxemarket/internal/catalog"
	"luxemarket/internal/domain"
)

// money formats a USD amount for display, rounded to whole dollars.
func money(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// discount is the percentage badge text for an offer, or "" when there is none.
func discount(o domain.Offer) string {
	pct, ok := o.Discount()
	if !ok {
		return ""
	}
	return "-" + humanize.Comma(int64(pct)) + "%"
}

// lowest is the product's minimum asking price, or "No price data".
func lowest(p domain.Product) string {
	v, ok := catalog.MinPrice(p)
	if !ok {
		return "No price data"
	}
	return money(v)
}
