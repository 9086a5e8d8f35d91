package catalog

import (
	"github.com/samber/lo"

	"luxemarket/internal/domain"
)

// Options are the recognized filter values for a catalog.
type Options struct {
	Categories  []domain.Option
	Brands      []domain.Option
	PriceRanges []domain.Option
	Conditions  []domain.Option
	Sorts       []domain.Option
}

// BuildOptions collects the selectable values: the fixed enumerations plus
// every brand and condition present in products.
func BuildOptions(products []domain.Product) Options {
	brandNames := append(domain.Brands(), lo.Map(products, func(p domain.Product, _ int) string { return p.Brand })...)
	brands := lo.UniqBy(
		lo.Map(brandNames, func(b string, _ int) domain.Option { return domain.Option{Name: b, Value: DeriveKey(b)} }),
		func(o domain.Option) string { return o.Value },
	)
	conditions := lo.UniqBy(
		lo.FilterMap(products, func(p domain.Product, _ int) (domain.Option, bool) {
			return domain.Option{Name: p.Condition, Value: DeriveKey(p.Condition)}, p.Condition != ""
		}),
		func(o domain.Option) string { return o.Value },
	)

	return Options{
		Categories: domain.Categories(),
		Brands:     brands,
		PriceRanges: lo.Map(domain.PriceRanges(), func(r domain.PriceRange, _ int) domain.Option {
			return domain.Option{Name: r.Name, Value: r.Key}
		}),
		Conditions: conditions,
		Sorts: []domain.Option{
			{Name: "Price: Low to High", Value: string(SortPriceLow)},
			{Name: "Price: High to Low", Value: string(SortPriceHigh)},
			{Name: "Rarity", Value: string(SortRarity)},
		},
	}
}

// Normalize blanks every criterion whose value is not a recognized option.
func (o Options) Normalize(c Criteria) Criteria {
	known := func(opts []domain.Option, v string) string {
		if lo.ContainsBy(opts, func(opt domain.Option) bool { return opt.Value == v }) {
			return v
		}
		return ""
	}
	return Criteria{
		Category:   known(o.Categories, c.Category),
		Brand:      known(o.Brands, c.Brand),
		Query:      c.Query,
		PriceRange: known(o.PriceRanges, c.PriceRange),
		Condition:  known(o.Conditions, c.Condition),
	}
}

// Filter applies c after dropping every value that is not one of the options,
// so an unrecognized criterion never narrows the result.
func (o Options) Filter(products []domain.Product, c Criteria) []domain.Product {
	return Filter(products, o.Normalize(c))
}
