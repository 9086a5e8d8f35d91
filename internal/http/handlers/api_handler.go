package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"luxemarket/internal/catalog"
	"luxemarket/internal/domain"
	applog "luxemarket/internal/log"
	"luxemarket/internal/search"
	"luxemarket/internal/services"
	"luxemarket/internal/validate"
)

// APIHandler serves the JSON API under /api/v1.
type APIHandler struct {
	Catalog *services.CatalogService
	Runner  *search.Runner
}

type productsResponse struct {
	Count    int                   `json:"count"`
	Products []domain.Product      `json:"products"`
	Summary  *catalog.PriceSummary `json:"summary"`
}

type searchRequest struct {
	Category  string `json:"category" form:"category"`
	Brand     string `json:"brand" form:"brand"`
	Query     string `json:"q" form:"q"`
	Price     string `json:"price" form:"price"`
	Condition string `json:"condition" form:"condition"`
	Sort      string `json:"sort" form:"sort"`
}

type jobResponse struct {
	ID       string           `json:"id"`
	State    search.State     `json:"state"`
	Count    int              `json:"count"`
	Products []domain.Product `json:"products,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func apiError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// Products filters and sorts the catalog synchronously.
func (h *APIHandler) Products(c *fiber.Ctx) error {
	req := searchRequest{
		Category: c.Query("category"), Brand: c.Query("brand"), Query: c.Query("q"),
		Price: c.Query("price"), Condition: c.Query("condition"), Sort: c.Query("sort"),
	}
	crit, key, field, ok := req.parse()
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return apiError(c, fiber.StatusBadRequest, "invalid "+field)
	}

	products, err := h.Catalog.Search(crit, key)
	if err != nil {
		applog.Error(c, "api.products.fail", err, nil)
		return apiError(c, fiber.StatusInternalServerError, "catalog data error")
	}
	resp := productsResponse{Count: len(products), Products: products}
	if sum, err := catalog.AggregateProducts(products); err == nil {
		resp.Summary = &sum
	}
	return c.JSON(resp)
}

func (h *APIHandler) Prices(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}
	sum, err := h.Catalog.Prices(id)
	switch {
	case err == nil:
		return c.JSON(sum)
	case errors.Is(err, domain.ErrNoPriceData):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case statusOf(err) == fiber.StatusNotFound:
		return apiError(c, fiber.StatusNotFound, "product not found")
	default:
		applog.Error(c, "api.prices.fail", err, map[string]any{"product": id})
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

// StartSearch triggers a delayed search. A caller with a search still pending
// gets that job back with 200 instead of 202.
func (h *APIHandler) StartSearch(c *fiber.Ctx) error {
	var req searchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apiError(c, fiber.StatusBadRequest, "malformed body")
		}
	}
	crit, key, field, ok := req.parse()
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return apiError(c, fiber.StatusBadRequest, "invalid "+field)
	}

	job, started := h.Runner.Trigger(owner(c), h.Catalog.SearchTask(crit, key), nil)
	applog.Info(c, "api.search.trigger", map[string]any{"job": job.ID, "started": started})
	status := fiber.StatusOK
	if started {
		status = fiber.StatusAccepted
	}
	return c.Status(status).JSON(jobView(job))
}

func (h *APIHandler) SearchStatus(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	job, ok := h.Runner.Job(id)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "job not found")
	}
	return c.JSON(jobView(job))
}

func jobView(j *search.Job) jobResponse {
	out := j.Outcome()
	resp := jobResponse{ID: j.ID, State: out.State, Count: len(out.Results), Products: out.Results}
	if out.State == search.StateFailed {
		resp.Error = "Failed to fetch luxury products."
	}
	return resp
}

func (r searchRequest) parse() (crit catalog.Criteria, key catalog.SortKey, field string, ok bool) {
	if strings.TrimSpace(r.Query) != "" {
		q, valid := validate.Q(r.Query)
		if !valid {
			return crit, key, "keyword", false
		}
		crit.Query = q
	}
	keys := []struct {
		name string
		src  string
		dst  *string
	}{
		{"category", r.Category, &crit.Category},
		{"brand", r.Brand, &crit.Brand},
		{"price", r.Price, &crit.PriceRange},
		{"condition", r.Condition, &crit.Condition},
	}
	for _, k := range keys {
		v, valid := validate.Key(k.src)
		if !valid {
			return crit, key, k.name, false
		}
		*k.dst = v
	}
	s, valid := validate.Key(r.Sort)
	if !valid {
		return crit, key, "sort", false
	}
	key = catalog.DefaultSort
	if s != "" {
		key = catalog.SortKey(s)
	}
	return crit, key, "", true
}
