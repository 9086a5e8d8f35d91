package catalog_test

import (
	"luxemarket/internal/domain"
)

func offer(seller string, price float64) domain.Offer {
	return domain.Offer{Seller: domain.Seller{Name: seller, Rating: 4.8, Verified: true}, Price: price}
}

// fixture is the four-item marketplace catalog.
func fixture() []domain.Product {
	year := 2022
	orig := 14800.0
	return []domain.Product{
		{
			ID: 1, Name: "Submariner Date 41mm", Brand: "Rolex", Category: domain.CategoryWatches,
			Condition: "Excellent", Year: &year, Rarity: domain.RarityRare, Authenticity: domain.AuthenticityVerified,
			Offers: []domain.Offer{
				{Seller: domain.Seller{Name: "Crown & Caliber", Rating: 4.9}, Price: 13500, OriginalPrice: &orig},
				offer("Bob's Watches", 13800),
				offer("Tourneau", 14200),
			},
		},
		{
			ID: 2, Name: "Classic Flap Bag Medium", Brand: "Chanel", Category: domain.CategoryHandbags,
			Condition: "Like New", Rarity: domain.RarityCommon, Authenticity: domain.AuthenticityGuaranteed,
			Offers: []domain.Offer{offer("Fashionphile", 8500), offer("The RealReal", 8800), offer("Vestiaire Collective", 8200)},
		},
		{
			ID: 3, Name: "Phantom VIII", Brand: "Rolls-Royce", Category: domain.CategoryCars,
			Condition: "Excellent", Rarity: domain.RarityUltraRare, Authenticity: domain.AuthenticityVerified,
			Offers: []domain.Offer{offer("Barrett-Jackson", 485000), offer("RM Sotheby's", 495000)},
		},
		{
			ID: 4, Name: "Nautilus 5711/1A", Brand: "Patek Philippe", Category: domain.CategoryWatches,
			Condition: "Brand New", Rarity: domain.RarityUltraRare, Authenticity: domain.AuthenticityGuaranteed,
			Offers: []domain.Offer{offer("Antiquorum", 125000), offer("Christie's", 128000)},
		},
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
