package repos

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"luxemarket/internal/domain"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

// CatalogRepo is the read-only product catalog. It is built once and every
// read hands out copies.
type CatalogRepo struct {
	products []domain.Product
	byID     map[int]int
}

type seedFile struct {
	Products []domain.Product `yaml:"products"`
}

// LoadCatalog builds the catalog from the embedded seed.
func LoadCatalog() (*CatalogRepo, error) {
	return ParseCatalog(seedCatalog)
}

// ParseCatalog decodes a YAML catalog document. Every record goes through the
// validating constructors.
func ParseCatalog(raw []byte) (*CatalogRepo, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, domain.WrapError(err, domain.ValidationError, "decode catalog")
	}
	return NewCatalogRepo(f.Products)
}

func NewCatalogRepo(products []domain.Product) (*CatalogRepo, error) {
	r := &CatalogRepo{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, raw := range products {
		p, err := domain.NewProduct(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, domain.NewError(domain.ValidationError, fmt.Sprintf("duplicate product id %d", p.ID))
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r, nil
}

func (r *CatalogRepo) List() []domain.Product {
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out
}

func (r *CatalogRepo) Get(id int) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, domain.NewError(domain.ProductNotFound, fmt.Sprintf("product %d not found", id))
	}
	return r.products[i].Clone(), nil
}

func (r *CatalogRepo) Len() int { return len(r.products) }
