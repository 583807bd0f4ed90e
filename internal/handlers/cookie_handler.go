package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

var demoCookies = []string{"name", "color", "age"}

// CookieHandler sets, reads and deletes the demo cookies.
type CookieHandler struct{}

// NewCookieHandler creates a new instance of CookieHandler.
func NewCookieHandler() *CookieHandler {
	return &CookieHandler{}
}

// RegisterRoutes mounts the cookie pages on router.
func (h *CookieHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/setCookie", h.HandleSet)
	router.Get("/getCookie", h.HandleGet)
	router.Get("/deleteCookie", h.HandleDelete)
}

// HandleSet writes name (30 second lifetime), color and age.
func (h *CookieHandler) HandleSet(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{Name: "name", Value: "Dependra", MaxAge: 30, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "color", Value: "red", Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "age", Value: "20", Path: "/"})
	return c.SendString("Cookie set")
}

// HandleGet reports each cookie independently; a missing one prints as None.
func (h *CookieHandler) HandleGet(c *fiber.Ctx) error {
	values := make([]string, len(demoCookies))
	found := false
	for i, name := range demoCookies {
		values[i] = c.Cookies(name)
		if values[i] == "" {
			values[i] = "None"
		} else {
			found = true
		}
	}
	if !found {
		return c.SendString("No cookies found")
	}
	return c.SendString(fmt.Sprintf("Name: %s, Color: %s, Age: %s", values[0], values[1], values[2]))
}

// HandleDelete expires the three demo cookies.
func (h *CookieHandler) HandleDelete(c *fiber.Ctx) error {
	for _, name := range demoCookies {
		c.Cookie(&fiber.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			MaxAge:  -1,
			Expires: time.Unix(0, 0),
		})
	}
	return c.SendString("Cookie deleted")
}
