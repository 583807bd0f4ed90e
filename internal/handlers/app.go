package handlers

import (
	"errors"
	"time"

	"chai/internal/config"
	"chai/internal/forms"
	"chai/internal/middleware"
	"chai/internal/repositories"
	"chai/internal/services"
	"chai/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

// Dependencies are the services the web app is built from.
type Dependencies struct {
	Config    config.Config
	Log       *logrus.Logger
	Students  *services.StudentService
	Signups   *services.SignupService
	Employees *services.EmployeeService
	Blog      *services.BlogService
	Auth      *services.AdminAuthService
}

// NewApp builds the fiber application with every route registered.
func NewApp(deps Dependencies) *fiber.App {
	cfg := deps.Config
	app := fiber.New(fiber.Config{
		AppName:      "chai",
		Views:        views.New(),
		ViewsLayout:  views.Layout,
		ErrorHandler: errorHandler(deps.Log),
		BodyLimit:    cfg.Media.MaxUploadMB * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(deps.Log))
	if cfg.Log.Format != "json" {
		app.Use(logger.New(logger.Config{Output: deps.Log.Out}))
	}
	if cfg.Server.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:csrfmiddlewaretoken",
			CookieName:     "csrftoken",
			CookieSameSite: "Lax",
			Expiration:     time.Hour,
			ContextKey:     "csrf",
		}))
	}

	app.Static("/media", cfg.Media.Dir)

	validator := forms.NewValidator()
	pages := NewPageHandler()
	pages.RegisterRoutes(app)

	chai := app.Group("/chai")
	pages.RegisterChaiRoutes(chai)
	NewStudentHandler(deps.Students).RegisterRoutes(chai)
	NewFormHandler(validator).RegisterRoutes(chai)
	NewSignupHandler(deps.Signups, validator).RegisterRoutes(chai)
	NewBlogHandler(deps.Blog, validator).RegisterRoutes(chai)
	NewCookieHandler().RegisterRoutes(chai)
	// Matches any two segments, so it has to stay last in the group.
	chai.Get("/:weather/:city", pages.HandleWeather)

	admin := NewAdminHandler(deps.Auth, deps.Students, deps.Employees, validator, deps.Log)
	admin.RegisterRoutes(app.Group("/admin"), middleware.AdminRequired(deps.Auth, deps.Log))

	return app
}

// errorHandler renders the 404 and 500 pages. Other fiber errors keep their
// status and message.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := utils.StatusMessage(code)
		var fe *fiber.Error
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		}

		switch {
		case code == fiber.StatusNotFound:
			return renderError(c, code, "404", fiber.Map{"path": c.Path()})
		case code >= fiber.StatusInternalServerError:
			log.WithError(err).WithField("path", c.Path()).Error("request error")
			return renderError(c, code, "500", fiber.Map{})
		default:
			return c.Status(code).SendString(message)
		}
	}
}

func renderError(c *fiber.Ctx, code int, name string, data fiber.Map) error {
	if err := c.Status(code).Render(name, data); err != nil {
		return c.Status(code).SendString(utils.StatusMessage(code))
	}
	return nil
}
