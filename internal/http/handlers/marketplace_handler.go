package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "luxemarket/internal/log"
	"luxemarket/internal/services"
)

type MarketplaceHandler struct {
	Market *services.MarketplaceService
}

func (h *MarketplaceHandler) Page(c *fiber.Ctx) error {
	st := h.Market.State(ensureSID(c))
	return render(c, "marketplace", h.view(st, ""))
}

// Filters stores the submitted filters and sort and starts a search. The
// browser is sent back to the page, which polls while the search loads.
func (h *MarketplaceHandler) Filters(c *fiber.Ctx) error {
	sid := ensureSID(c)

	req := searchRequest{
		Category: c.FormValue("category"), Brand: c.FormValue("brand"), Query: c.FormValue("q"),
		Price: c.FormValue("price"), Condition: c.FormValue("condition"), Sort: c.FormValue("sort"),
	}
	crit, sortKey, field, ok := req.parse()
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		st := h.Market.State(sid)
		c.Status(fiber.StatusBadRequest)
		return render(c, "marketplace", h.view(st, "Enter a valid "+field))
	}

	h.Market.SetFilter(sid, crit)
	h.Market.SetSort(sid, sortKey)
	st, started := h.Market.TriggerSearch(sid)
	applog.Info(c, "marketplace.search", map[string]any{
		"job": st.JobID, "started": started, "category": st.Criteria.Category,
		"brand": st.Criteria.Brand, "q": st.Criteria.Query, "sort": string(st.Sort),
	})
	return c.Redirect("/marketplace")
}

func (h *MarketplaceHandler) view(st services.MarketState, errMsg string) fiber.Map {
	return fiber.Map{
		"State":   st,
		"Options": h.Market.Catalog.Options(),
		"Err":     errMsg,
		"Refresh": st.Loading,
	}
}
