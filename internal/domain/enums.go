package domain

type Category string

const (
	CategoryWatches  Category = "watches"
	CategoryHandbags Category = "handbags"
	CategoryJewelry  Category = "jewelry"
	CategoryCars     Category = "cars"
	CategoryShoes    Category = "shoes"
	CategoryArt      Category = "art"
)

// Option is a selectable filter value with its display label.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var categoryLabels = map[Category]string{
	CategoryWatches:  "Luxury Watches",
	CategoryHandbags: "Designer Handbags",
	CategoryJewelry:  "Fine Jewelry",
	CategoryCars:     "Luxury Cars",
	CategoryShoes:    "Designer Shoes",
	CategoryArt:      "Art & Collectibles",
}

// Categories lists the category options in display order.
func Categories() []Option {
	order := []Category{CategoryWatches, CategoryHandbags, CategoryJewelry, CategoryCars, CategoryShoes, CategoryArt}
	out := make([]Option, 0, len(order))
	for _, c := range order {
		out = append(out, Option{Name: categoryLabels[c], Value: string(c)})
	}
	return out
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityUltraRare Rarity = "ultra-rare"
)

var rarityRank = map[Rarity]int{
	RarityUltraRare: 3,
	RarityRare:      2,
	RarityCommon:    1,
}

// Rank maps a rarity onto {common=1, rare=2, ultra-rare=3}.
// Values outside the set are a DataError, never rank 0.
func (r Rarity) Rank() (int, error) {
	n, ok := rarityRank[r]
	if !ok {
		return 0, &DataError{Field: "rarity", Value: string(r)}
	}
	return n, nil
}

type Authenticity string

const (
	AuthenticityVerified   Authenticity = "verified"
	AuthenticityPending    Authenticity = "pending"
	AuthenticityGuaranteed Authenticity = "guaranteed"
)

func (a Authenticity) Valid() bool {
	switch a {
	case AuthenticityVerified, AuthenticityPending, AuthenticityGuaranteed:
		return true
	}
	return false
}

// Brands are the brand filter options offered even when the catalog holds no
// item for them.
func Brands() []string {
	return []string{"Rolex", "Chanel", "Louis Vuitton", "Hermès", "Cartier", "Patek Philippe"}
}

// PriceRange bounds apply to a product's minimum offer price: Min inclusive,
// Max exclusive, Max == 0 means unbounded.
type PriceRange struct {
	Key  string
	Name string
	Min  float64
	Max  float64
}

func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return r.Max == 0 || price < r.Max
}

func PriceRanges() []PriceRange {
	return []PriceRange{
		{Key: "0-1000", Name: "Under $1,000", Min: 0, Max: 1000},
		{Key: "1000-5000", Name: "$1,000 - $5,000", Min: 1000, Max: 5000},
		{Key: "5000-25000", Name: "$5,000 - $25,000", Min: 5000, Max: 25000},
		{Key: "25000-100000", Name: "$25,000 - $100,000", Min: 25000, Max: 100000},
		{Key: "100000+", Name: "Over $100,000", Min: 100000},
	}
}

func LookupPriceRange(key string) (PriceRange, bool) {
	for _, r := range PriceRanges() {
		if r.Key == key {
			return r, true
		}
	}
	return PriceRange{}, false
}
