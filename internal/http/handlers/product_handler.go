package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"luxemarket/internal/domain"
	"luxemarket/internal/log"
	"luxemarket/internal/services"
	"luxemarket/internal/validate"
)

const msgGone = "This item is no longer available"

type ProductHandler struct {
	Catalog   *services.CatalogService
	Purchases *services.PurchaseService
	Notices   *services.Notices
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, msgGone)
	}

	var size string
	if raw := c.Query("size"); raw != "" {
		if size, ok = validate.Size(raw); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "size"})
			size = ""
		}
	}

	d, err := h.Catalog.Detail(id, size)
	switch code, _ := domain.GetCode(err); {
	case err == nil:
	case code == domain.ProductNotFound:
		return notFound(c, msgGone)
	case code == domain.InvalidSize:
		c.Status(fiber.StatusBadRequest)
		return render(c, "product", fiber.Map{"D": d, "Err": "Select one of the listed sizes"})
	default:
		log.Error(c, "product.detail.fail", err, map[string]any{"product": id})
		return err
	}

	if d.Size != "" {
		h.Notices.Push(ensureSID(c), services.NoticeSuccess,
			fmt.Sprintf("Found %d verified sellers for size %s", len(d.Sellers), d.Size))
	}
	return render(c, "product", fiber.Map{"D": d})
}

// Purchase hands the user over to the chosen seller. No payment is taken here.
func (h *ProductHandler) Purchase(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, msgGone)
	}
	back := "/product/" + strconv.Itoa(id)
	if size, ok := validate.Size(c.FormValue("size")); ok {
		back += "?size=" + url.QueryEscape(size)
	}

	seller, ok := validate.Seller(c.FormValue("seller"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "seller"})
		h.Notices.Push(sid, services.NoticeError, "Select a seller to continue")
		return c.Redirect(back)
	}

	p, o, err := h.Purchases.Initiate(id, seller)
	if err != nil {
		if statusOf(err) == fiber.StatusInternalServerError {
			log.Error(c, "purchase.initiate.fail", err, map[string]any{"product": id, "seller": seller})
		}
		if code, _ := domain.GetCode(err); code == domain.ProductNotFound {
			return notFound(c, msgGone)
		}
		h.Notices.Push(sid, services.NoticeError, publicMessage(err))
		return c.Redirect(back)
	}

	log.Audit(c, "purchase.initiate", map[string]any{"product": p.ID, "seller": o.Seller.Name, "price": o.Price})
	h.Notices.Push(sid, services.NoticeSuccess, fmt.Sprintf("Redirecting to %s for secure checkout...", o.Seller.Name))
	return c.Redirect(back)
}
