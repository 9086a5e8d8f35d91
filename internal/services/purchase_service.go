package services

import (
	"luxemarket/internal/domain"
	"luxemarket/internal/repos"
)

// PurchaseService starts a checkout hand-off to an external seller. Payment
// happens on the seller's side.
type PurchaseService struct {
	Catalog *repos.CatalogRepo
}

func NewPurchaseService(c *repos.CatalogRepo) *PurchaseService {
	return &PurchaseService{Catalog: c}
}

// Initiate resolves the offer the user picked. A seller with no stock cannot
// be checked out with.
func (s *PurchaseService) Initiate(productID int, seller string) (domain.Product, domain.Offer, error) {
	p, err := s.Catalog.Get(productID)
	if err != nil {
		return p, domain.Offer{}, err
	}
	o, err := findOffer(s.Catalog, productID, seller)
	if err != nil {
		return p, o, err
	}
	if o.Stock <= 0 {
		return p, o, domain.NewError(domain.ValidationError, seller+" is out of stock")
	}
	return p, o, nil
}
