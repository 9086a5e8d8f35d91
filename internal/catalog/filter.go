package catalog

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"luxemarket/internal/domain"
)

// Criteria are the user-selected constraints. An empty field places no
// constraint on the result.
type Criteria struct {
	Category   string `json:"category,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Query      string `json:"q,omitempty"`
	PriceRange string `json:"price,omitempty"`
	Condition  string `json:"condition,omitempty"`
}

// Active reports whether any constraint is set.
func (c Criteria) Active() bool {
	return c != Criteria{}
}

// Filter returns the products matching every active criterion, in input order.
// Category and price range values outside their enumerations are ignored;
// brand and condition keys are matched as given. Options.Filter is the entry
// point that treats every unrecognized value as inactive.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	var preds []func(domain.Product) bool

	if cat := domain.Category(c.Category); cat.Valid() {
		preds = append(preds, func(p domain.Product) bool { return p.Category == cat })
	}
	if c.Brand != "" {
		preds = append(preds, func(p domain.Product) bool { return DeriveKey(p.Brand) == c.Brand })
	}
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		preds = append(preds, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Brand), q)
		})
	}
	if r, ok := domain.LookupPriceRange(c.PriceRange); ok {
		preds = append(preds, func(p domain.Product) bool {
			lowest, ok := MinPrice(p)
			return ok && r.Contains(lowest)
		})
	}
	if c.Condition != "" {
		preds = append(preds, func(p domain.Product) bool { return DeriveKey(p.Condition) == c.Condition })
	}

	if len(preds) == 0 {
		return slices.Clone(products)
	}
	return lo.Filter(products, func(p domain.Product, _ int) bool {
		for _, match := range preds {
			if !match(p) {
				return false
			}
		}
		return true
	})
}
