package handlers

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{3,50}$`)

// Greeting is one entry of the greetings page.
type Greeting struct {
	Greet     string
	IsHoliday bool
}

// Person is one row of the office page.
type Person struct {
	Name            string
	Time            string
	Stock           string
	IsAuthenticated bool
}

var greetings = []Greeting{
	{Greet: "Enjoy your vacation", IsHoliday: true},
	{Greet: "No vacation", IsHoliday: false},
}

var office = []Person{
	{Name: "Dependra", Time: "Morning", Stock: "Full", IsAuthenticated: true},
	{Name: "Vinit", Time: "Evening", Stock: "Half", IsAuthenticated: true},
	{Name: "Alok", Time: "Morning", Stock: "Full", IsAuthenticated: false},
	{Name: "Ajay", Time: "Night", Stock: "empty", IsAuthenticated: true},
	{Name: "Rudr", Time: "afternoon", Stock: "Full", IsAuthenticated: false},
}

// PageHandler serves the static and template demo pages.
type PageHandler struct {
	now func() time.Time
}

// NewPageHandler creates a new instance of PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{now: time.Now}
}

// RegisterRoutes registers the site-level pages.
func (h *PageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/member", plainText("Hello, Dependra"))
	router.Get("/home", plainText("Hello, World!"))
	router.Get("/about", plainText("This is the about page."))
	router.Get("/contact", plainText("This is the contact page."))
}

// RegisterChaiRoutes registers the demo pages below /chai. The two-segment
// weather page is registered separately after every other /chai route.
func (h *PageHandler) RegisterChaiRoutes(router fiber.Router) {
	router.Get("/", h.template("chai", nil))
	router.Get("/order/:id<int>", h.HandleOrder)
	router.Get("/identity/:author", h.HandleIdentity)
	router.Get("/blog/:slug", h.HandleProductSlug)
	router.Get("/greet", h.template("greet", fiber.Map{"name": "Dependra"}))
	router.Get("/date", h.HandleDate)
	router.Get("/greetings", h.template("greeting", fiber.Map{"greets": greetings}))
	router.Get("/city", h.template("city", fiber.Map{"city": "Delhi"}))
	router.Get("/monday", h.template("monday_menu", nil))
	router.Get("/person", h.template("person", fiber.Map{"allperson": office}))
	router.Get("/child", h.template("child", nil))
	router.Get("/childlist", h.template("childlist", nil))
	router.Get("/product", h.template("product_list", nil))
	router.Get("/post/:id<int>", h.HandlePost)
	router.Get("/greet/:name/:age<int>", h.HandleGreetAge)
}

func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "index", nil)
}

func (h *PageHandler) HandleOrder(c *fiber.Ctx) error {
	return c.SendString(fmt.Sprintf("order %s", c.Params("id")))
}

func (h *PageHandler) HandleIdentity(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "identity", fiber.Map{"author": c.Params("author")})
}

// HandleProductSlug only accepts lowercase slugs of 3 to 50 characters.
func (h *PageHandler) HandleProductSlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !slugPattern.MatchString(slug) {
		return fiber.ErrNotFound
	}
	return c.SendString(fmt.Sprintf("product slug is %s", slug))
}

func (h *PageHandler) HandleDate(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "date", fiber.Map{"current_date": h.now()})
}

func (h *PageHandler) HandlePost(c *fiber.Ctx) error {
	return c.SendString(fmt.Sprintf("Post ID:%s", c.Params("id")))
}

func (h *PageHandler) HandleGreetAge(c *fiber.Ctx) error {
	return c.SendString(fmt.Sprintf("heello %s, you are %s year ", c.Params("name"), c.Params("age")))
}

func (h *PageHandler) HandleWeather(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "we", fiber.Map{
		"weather": c.Params("weather"),
		"city":    c.Params("city"),
	})
}

// template renders name with a fresh copy of data on every request.
func (h *PageHandler) template(name string, data fiber.Map) fiber.Handler {
	return func(c *fiber.Ctx) error {
		binding := fiber.Map{}
		for k, v := range data {
			binding[k] = v
		}
		return render(c, fiber.StatusOK, name, binding)
	}
}

func plainText(body string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(body)
	}
}
