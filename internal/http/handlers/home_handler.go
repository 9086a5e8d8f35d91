package handlers

import (
	"github.com/gofiber/fiber/v2"

	"luxemarket/internal/catalog"
	applog "luxemarket/internal/log"
	"luxemarket/internal/services"
)

const featuredCount = 3

type HomeHandler struct {
	Catalog *services.CatalogService
}

// Home is the landing page: categories and the rarest pieces in the catalog.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	featured, err := h.Catalog.Search(catalog.Criteria{}, catalog.SortRarity)
	if err != nil {
		applog.Error(c, "home.featured.fail", err, nil)
		featured = nil
	}
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	opts := h.Catalog.Options()
	return render(c, "home", fiber.Map{
		"Categories": opts.Categories,
		"Brands":     opts.Brands,
		"Featured":   featured,
		"Count":      h.Catalog.Repo.Len(),
	})
}
