package services

import (
	"luxemarket/internal/domain"
	"luxemarket/internal/repos"
)

type InventoryService struct {
	Catalog *repos.CatalogRepo
}

func NewInventoryService(c *repos.CatalogRepo) *InventoryService {
	return &InventoryService{Catalog: c}
}

// CheckAvailability converts a seller's stock to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *InventoryService) CheckAvailability(productID int, seller string) (domain.Availability, error) {
	o, err := findOffer(s.Catalog, productID, seller)
	if err != nil {
		return domain.Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case o.Stock >= 5:
		status = "IN_STOCK"
	case o.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: o.Stock, ETA: o.ShippingTime}, nil
}

func findOffer(c *repos.CatalogRepo, productID int, seller string) (domain.Offer, error) {
	p, err := c.Get(productID)
	if err != nil {
		return domain.Offer{}, err
	}
	for _, o := range p.Offers {
		if o.Seller.Name == seller {
			return o, nil
		}
	}
	return domain.Offer{}, domain.NewError(domain.SellerNotFound, seller+" does not sell this item")
}
