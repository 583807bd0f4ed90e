package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminCookie holds the admin JWT issued by the login page.
const AdminCookie = "admin_token"

// TokenValidator is implemented by services.AdminAuthService.
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.MapClaims, error)
}

// AdminRequired guards the admin pages. Browsers carry the token in the
// admin_token cookie and are sent to the login page when it is missing or
// invalid; clients using an "Authorization: Bearer" header get a 401.
func AdminRequired(auth TokenValidator, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if !(len(parts) == 2 && parts[0] == "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Authorization header format must be 'Bearer <token>'",
				})
			}
			claims, err := auth.ValidateToken(parts[1])
			if err != nil {
				log.WithError(err).Debug("admin token rejected")
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid or expired token",
				})
			}
			c.Locals("username", claims["username"])
			return c.Next()
		}

		tokenString := c.Cookies(AdminCookie)
		if tokenString == "" {
			return redirectToLogin(c)
		}
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			log.WithError(err).Debug("admin cookie rejected")
			c.ClearCookie(AdminCookie)
			return redirectToLogin(c)
		}

		c.Locals("username", claims["username"])
		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect("/admin/login?next="+c.Path(), fiber.StatusSeeOther)
}
