package catalog

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"luxemarket/internal/domain"
)

type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRarity    SortKey = "rarity"

	DefaultSort = SortPriceLow
)

func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortPriceLow, SortPriceHigh, SortRarity:
		return k, true
	}
	return "", false
}

// Sort returns a reordered copy of products.
//
// price-high orders by the minimum offer price descending, not by the highest
// offer. Products without offers have no price and come last in both price
// orders. An unknown key keeps input order.
func Sort(products []domain.Product, key SortKey) ([]domain.Product, error) {
	switch key {
	case SortPriceLow:
		return sortByMinPrice(products, false), nil
	case SortPriceHigh:
		return sortByMinPrice(products, true), nil
	case SortRarity:
		return sortByRarity(products)
	}
	return slices.Clone(products), nil
}

type keyed[K cmp.Ordered] struct {
	p   domain.Product
	key K
	ok  bool
}

func unwrap[K cmp.Ordered](items []keyed[K]) []domain.Product {
	return lo.Map(items, func(it keyed[K], _ int) domain.Product { return it.p })
}

func sortByMinPrice(products []domain.Product, desc bool) []domain.Product {
	items := lo.Map(products, func(p domain.Product, _ int) keyed[float64] {
		lowest, ok := MinPrice(p)
		return keyed[float64]{p: p, key: lowest, ok: ok}
	})
	slices.SortStableFunc(items, func(a, b keyed[float64]) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		if desc {
			return cmp.Compare(b.key, a.key)
		}
		return cmp.Compare(a.key, b.key)
	})
	return unwrap(items)
}

func sortByRarity(products []domain.Product) ([]domain.Product, error) {
	items := make([]keyed[int], 0, len(products))
	for _, p := range products {
		rank, err := p.Rarity.Rank()
		if err != nil {
			return nil, &domain.DataError{ProductID: p.ID, Field: "rarity", Value: string(p.Rarity)}
		}
		items = append(items, keyed[int]{p: p, key: rank, ok: true})
	}
	slices.SortStableFunc(items, func(a, b keyed[int]) int { return cmp.Compare(b.key, a.key) })
	return unwrap(items), nil
}
