package handlers

import (
	"strconv"

	"chai/internal/forms"

	"github.com/gofiber/fiber/v2"
)

// render writes a page with the csrf token and an "errors" entry always
// present, so templates can call .errors.Get unconditionally.
func render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["errors"]; !ok {
		data["errors"] = forms.FieldErrors(nil)
	}
	if token, ok := c.Locals("csrf").(string); ok {
		data["csrf"] = token
	}
	return c.Status(status).Render(name, data)
}

// idParam reads an integer route parameter. Routes constrain ids with <int>,
// so a failure here means the value overflowed.
func idParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}
