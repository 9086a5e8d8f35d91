package services

import (
	"luxemarket/internal/domain"
	"luxemarket/internal/repos"
)

type FavoritesService struct {
	Repo    *repos.FavoritesRepo
	Catalog *repos.CatalogRepo
}

func NewFavoritesService(r *repos.FavoritesRepo, c *repos.CatalogRepo) *FavoritesService {
	return &FavoritesService{Repo: r, Catalog: c}
}

// Save adds a catalog product to the session's favorites. added is false when
// it was already there.
func (s *FavoritesService) Save(sessionID string, productID int) (p domain.Product, added bool, err error) {
	p, err = s.Catalog.Get(productID)
	if err != nil {
		return p, false, err
	}
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return p, false, err
	}
	added, err = s.Repo.Add(id, productID)
	return p, added, err
}

func (s *FavoritesService) Unsave(sessionID string, productID int) error {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Remove(id, productID)
}

type Favorite struct {
	Product domain.Product
	SavedAt string
}

// List returns saved products in save order. Products no longer in the
// catalog are skipped.
func (s *FavoritesService) List(sessionID string) ([]Favorite, error) {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.List(id)
	if err != nil {
		return nil, err
	}
	out := make([]Favorite, 0, len(rows))
	for _, r := range rows {
		p, err := s.Catalog.Get(r.ProductID)
		if err != nil {
			continue
		}
		out = append(out, Favorite{Product: p, SavedAt: r.CreatedAt})
	}
	return out, nil
}
