package domain

type Seller struct {
	Name     string  `json:"name" yaml:"name" validate:"required,max=80"`
	Rating   float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Location string  `json:"location" yaml:"location" validate:"max=80"`
	Verified bool    `json:"verified" yaml:"verified"`
	Reviews  int     `json:"reviews,omitempty" yaml:"reviews" validate:"gte=0"`
	Country  string  `json:"country,omitempty" yaml:"country"`
}

type Offer struct {
	Seller        Seller   `json:"seller" yaml:"seller"`
	Price         float64  `json:"price" yaml:"price" validate:"gt=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" yaml:"original_price" validate:"omitempty,gt=0"`

	ShippingCost          float64  `json:"shippingCost,omitempty" yaml:"shipping_cost" validate:"gte=0"`
	ShippingTime          string   `json:"shippingTime,omitempty" yaml:"shipping_time"`
	Stock                 int      `json:"stock" yaml:"stock" validate:"gte=0"`
	FastShipping          bool     `json:"fastShipping,omitempty" yaml:"fast_shipping"`
	AuthenticityGuarantee bool     `json:"authenticityGuarantee,omitempty" yaml:"authenticity_guarantee"`
	Badges                []string `json:"badges,omitempty" yaml:"badges"`
}

// Discount returns the whole percentage saved against OriginalPrice.
// ok is false when there is no reference price above Price.
func (o Offer) Discount() (pct int, ok bool) {
	if o.OriginalPrice == nil || *o.OriginalPrice <= o.Price {
		return 0, false
	}
	return int((*o.OriginalPrice - o.Price) / *o.OriginalPrice * 100), true
}

type Product struct {
	ID           int          `json:"id" yaml:"id" validate:"gt=0"`
	Name         string       `json:"name" yaml:"name" validate:"required,max=120"`
	Brand        string       `json:"brand" yaml:"brand" validate:"required,max=60"`
	Category     Category     `json:"category" yaml:"category"`
	Condition    string       `json:"condition" yaml:"condition" validate:"max=40"`
	Year         *int         `json:"year,omitempty" yaml:"year" validate:"omitempty,gte=1800,lte=2100"`
	Rarity       Rarity       `json:"rarity" yaml:"rarity"`
	Authenticity Authenticity `json:"authenticity" yaml:"authenticity"`
	Offers       []Offer      `json:"prices" yaml:"prices"`

	Model       string   `json:"model,omitempty" yaml:"model"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	SKU         string   `json:"sku,omitempty" yaml:"sku"`
	RetailPrice float64  `json:"retailPrice,omitempty" yaml:"retail_price" validate:"gte=0"`
	Sizes       []string `json:"sizes,omitempty" yaml:"sizes"`
	Features    []string `json:"features,omitempty" yaml:"features"`
}

// HasSize reports whether size is one of the product's listed sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	if p.Year != nil {
		y := *p.Year
		out.Year = &y
	}
	out.Offers = make([]Offer, len(p.Offers))
	for i, o := range p.Offers {
		if o.OriginalPrice != nil {
			v := *o.OriginalPrice
			o.OriginalPrice = &v
		}
		o.Badges = append([]string(nil), o.Badges...)
		out.Offers[i] = o
	}
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Features = append([]string(nil), p.Features...)
	return out
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
	ETA    string `json:"eta,omitempty"`
}
