package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"luxemarket/internal/domain"
	applog "luxemarket/internal/log"
	"luxemarket/internal/metrics"
	"luxemarket/internal/services"
	"luxemarket/internal/validate"
)

type FavoritesHandler struct {
	Favs    *services.FavoritesService
	Notices *services.Notices
	Metrics *metrics.Metrics
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Favs.List(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load favorites"})
	}
	return render(c, "favorites", fiber.Map{"Items": items})
}

func (h *FavoritesHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}

	p, added, err := h.Favs.Save(sid, pid)
	switch code, _ := domain.GetCode(err); {
	case err == nil:
	case code == domain.ProductNotFound:
		return notFound(c, msgGone)
	default:
		applog.Error(c, "favorites.save.fail", err, map[string]any{"product": pid})
		h.Notices.Push(sid, services.NoticeError, "Error adding to favorites")
		return c.Redirect(back(c, "/favorites"))
	}

	if added {
		h.Metrics.Favorite("save")
		applog.Audit(c, "favorites.save", map[string]any{"product": pid})
	}
	h.Notices.Push(sid, services.NoticeSuccess, p.Name+" added to favorites!")
	return c.Redirect(back(c, "/favorites"))
}

func (h *FavoritesHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Favs.Unsave(sid, pid); err != nil {
		applog.Error(c, "favorites.unsave.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not remove item")
	}
	h.Metrics.Favorite("remove")
	applog.Audit(c, "favorites.unsave", map[string]any{"product": pid})
	return c.Redirect("/favorites")
}

// back returns a same-site Referer path, or fallback.
func back(c *fiber.Ctx, fallback string) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return fallback
	}
	host := c.BaseURL()
	if strings.HasPrefix(ref, host+"/") {
		return strings.TrimPrefix(ref, host)
	}
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	return fallback
}
