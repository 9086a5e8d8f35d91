package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// NewSeller trims and validates a seller record.
func NewSeller(s Seller) (Seller, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Location = strings.TrimSpace(s.Location)
	if err := check(s); err != nil {
		return Seller{}, err
	}
	return s, nil
}

// NewOffer validates an offer and its seller. A missing or non-positive price
// is rejected here so it never reaches sorting or aggregation.
func NewOffer(o Offer) (Offer, error) {
	seller, err := NewSeller(o.Seller)
	if err != nil {
		return Offer{}, err
	}
	o.Seller = seller
	if err := check(o); err != nil {
		return Offer{}, err
	}
	return o, nil
}

// NewProduct validates a product record, its enumerated fields and every offer.
func NewProduct(p Product) (Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	if err := check(p); err != nil {
		return Product{}, err
	}
	if !p.Category.Valid() {
		return Product{}, WrapError(&DataError{ProductID: p.ID, Field: "category", Value: string(p.Category)},
			ValidationError, "invalid product")
	}
	if _, err := p.Rarity.Rank(); err != nil {
		return Product{}, WrapError(&DataError{ProductID: p.ID, Field: "rarity", Value: string(p.Rarity)},
			ValidationError, "invalid product")
	}
	if !p.Authenticity.Valid() {
		return Product{}, WrapError(&DataError{ProductID: p.ID, Field: "authenticity", Value: string(p.Authenticity)},
			ValidationError, "invalid product")
	}
	offers := make([]Offer, 0, len(p.Offers))
	for i, o := range p.Offers {
		offer, err := NewOffer(o)
		if err != nil {
			return Product{}, fmt.Errorf("product %d offer %d: %w", p.ID, i, err)
		}
		offers = append(offers, offer)
	}
	p.Offers = offers
	return p, nil
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return WrapError(err, ValidationError, "validation error")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
	}
	return NewError(ValidationError, "invalid fields: "+strings.Join(fields, ", "))
}
