package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"luxemarket/internal/domain"
	"luxemarket/internal/services"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if n, ok := c.Locals(localNotice).(*services.Notices); ok {
		data["Notices"] = n.Drain(ensureSID(c))
	}
	if tok, ok := c.Locals("csrf").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	}
	data["Path"] = c.Path()
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}

// statusOf maps an error code to the HTTP status shown to the client.
func statusOf(err error) int {
	code, _ := domain.GetCode(err)
	switch code {
	case domain.NotFound, domain.ProductNotFound, domain.SellerNotFound, domain.JobNotFound:
		return fiber.StatusNotFound
	case domain.ValidationError, domain.InvalidProductID, domain.InvalidSortKey, domain.InvalidSize:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// publicMessage is safe to show to users; internal errors get a generic text.
func publicMessage(err error) string {
	if statusOf(err) == fiber.StatusInternalServerError {
		return "Something went wrong. Please try again."
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
