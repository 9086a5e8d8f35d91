package services

import (
	"context"
	"errors"

	"luxemarket/internal/catalog"
	"luxemarket/internal/domain"
	"luxemarket/internal/repos"
	"luxemarket/internal/search"
)

type CatalogService struct {
	Repo    *repos.CatalogRepo
	options catalog.Options
}

func NewCatalogService(repo *repos.CatalogRepo) *CatalogService {
	return &CatalogService{Repo: repo, options: catalog.BuildOptions(repo.List())}
}

func (s *CatalogService) Options() catalog.Options { return s.options }

// Normalize drops criteria values that are not selectable options.
func (s *CatalogService) Normalize(c catalog.Criteria) catalog.Criteria {
	return s.options.Normalize(c)
}

// Search filters and sorts the catalog synchronously.
func (s *CatalogService) Search(c catalog.Criteria, key catalog.SortKey) ([]domain.Product, error) {
	return catalog.Sort(s.options.Filter(s.Repo.List(), c), key)
}

// SearchTask wraps Search for the background runner.
func (s *CatalogService) SearchTask(c catalog.Criteria, key catalog.SortKey) search.Task {
	return func(ctx context.Context) ([]domain.Product, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return s.Search(c, key)
	}
}

func (s *CatalogService) GetProduct(id int) (domain.Product, error) {
	return s.Repo.Get(id)
}

// Prices aggregates every offer of one product.
func (s *CatalogService) Prices(id int) (catalog.PriceSummary, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		return catalog.PriceSummary{}, err
	}
	return catalog.Aggregate(p.Offers)
}

type ProductDetail struct {
	Product     domain.Product
	Size        string
	Sellers     []domain.Offer
	Summary     *catalog.PriceSummary
	NoPriceData bool
}

// ShowSellers is false for sized products until a size is picked.
func (d ProductDetail) ShowSellers() bool {
	return len(d.Product.Sizes) == 0 || d.Size != ""
}

// Detail loads a product page. Sized products list their sellers only once
// size names one of the product's sizes.
func (s *CatalogService) Detail(id int, size string) (ProductDetail, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		return ProductDetail{}, err
	}
	d := ProductDetail{Product: p}
	if size != "" {
		if !p.HasSize(size) {
			return d, domain.NewError(domain.InvalidSize, "size "+size+" is not offered for this item")
		}
		d.Size = size
	}
	if !d.ShowSellers() {
		return d, nil
	}

	d.Sellers = p.Offers
	sum, err := catalog.Aggregate(p.Offers)
	switch {
	case errors.Is(err, domain.ErrNoPriceData):
		d.NoPriceData = true
	case err != nil:
		return d, err
	default:
		d.Summary = &sum
	}
	return d, nil
}
