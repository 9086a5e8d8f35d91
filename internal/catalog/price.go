package catalog

import (
	"github.com/samber/lo"

	"luxemarket/internal/domain"
)

// PriceSummary is the lowest and highest asking price over a set of offers.
type PriceSummary struct {
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
	Offers  int     `json:"offers"`
}

// Aggregate computes the price summary of offers. OriginalPrice is never
// considered. With no offers it returns domain.ErrNoPriceData.
func Aggregate(offers []domain.Offer) (PriceSummary, error) {
	if len(offers) == 0 {
		return PriceSummary{}, domain.ErrNoPriceData
	}
	prices := lo.Map(offers, func(o domain.Offer, _ int) float64 { return o.Price })
	return PriceSummary{Lowest: lo.Min(prices), Highest: lo.Max(prices), Offers: len(prices)}, nil
}

// AggregateProducts summarizes the union of the products' offers.
func AggregateProducts(products []domain.Product) (PriceSummary, error) {
	return Aggregate(lo.FlatMap(products, func(p domain.Product, _ int) []domain.Offer { return p.Offers }))
}

// MinPrice is the product's representative price. ok is false when the
// product has no offers.
func MinPrice(p domain.Product) (float64, bool) {
	if len(p.Offers) == 0 {
		return 0, false
	}
	return lo.MinBy(p.Offers, func(a, b domain.Offer) bool { return a.Price < b.Price }).Price, true
}
