package handlers

import (
	"errors"
	"strconv"
	"strings"

	"chai/internal/forms"
	"chai/internal/middleware"
	"chai/internal/models"
	"chai/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminHandler serves the login page and the pages behind it.
type AdminHandler struct {
	auth      *services.AdminAuthService
	students  *services.StudentService
	employees *services.EmployeeService
	validator *forms.Validator
	log       *logrus.Logger
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler(auth *services.AdminAuthService, students *services.StudentService, employees *services.EmployeeService, validator *forms.Validator, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		students:  students,
		employees: employees,
		validator: validator,
		log:       log,
	}
}

// RegisterRoutes registers the admin routes; everything except login and
// logout goes through guard.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	router.Get("/login", h.HandleLoginPage)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)

	protected := router.Group("", guard)
	protected.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/students", fiber.StatusFound)
	})
	protected.Get("/students", h.HandleStudents)
	protected.Get("/employees", h.HandleEmployees)
	protected.Get("/employees/new", h.HandleNewEmployeePage)
	protected.Post("/employees/new", h.HandleCreateEmployee)
	protected.Post("/employees/:id<int>/delete", h.HandleDeleteEmployee)
}

func (h *AdminHandler) HandleLoginPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "admin/login", fiber.Map{
		"form": forms.LoginForm{},
		"next": safeNext(c.Query("next")),
	})
}

// HandleLogin stores a signed token in the admin_token cookie.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var form forms.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	next := safeNext(c.FormValue("next"))
	if errs := h.validator.Check(form); errs != nil {
		return render(c, fiber.StatusBadRequest, "admin/login", fiber.Map{"form": form, "errors": errs, "next": next})
	}

	token, err := h.auth.Login(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			return err
		}
		h.log.WithField("username", form.Username).Warn("admin login failed")
		return render(c, fiber.StatusUnauthorized, "admin/login", fiber.Map{
			"form":   forms.LoginForm{Username: form.Username},
			"errors": forms.FieldErrors{"__all__": "Please enter the correct username and password."},
			"next":   next,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    token,
		Path:     "/admin",
		MaxAge:   int(h.auth.TokenTTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(next, fiber.StatusSeeOther)
}

// HandleLogout clears the admin cookie.
func (h *AdminHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return c.Redirect("/admin/login", fiber.StatusSeeOther)
}

// HandleStudents lists students ordered by name, filtered by q (name or
// email) and an optional exact age.
func (h *AdminHandler) HandleStudents(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	ageParam := strings.TrimSpace(c.Query("age"))

	var age *int
	if ageParam != "" {
		n, err := strconv.Atoi(ageParam)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "age must be a whole number")
		}
		age = &n
	}

	students, err := h.students.SearchStudents(q, age)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "admin/students", fiber.Map{
		"students": students,
		"q":        q,
		"age":      ageParam,
		"username": c.Locals("username"),
	})
}

func (h *AdminHandler) HandleEmployees(c *fiber.Ctx) error {
	employees, err := h.employees.ListEmployees()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "admin/employees", fiber.Map{
		"employees": employees,
		"username":  c.Locals("username"),
	})
}

func (h *AdminHandler) HandleNewEmployeePage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "admin/employee_form", fiber.Map{"form": forms.EmployeeForm{}})
}

func (h *AdminHandler) HandleCreateEmployee(c *fiber.Ctx) error {
	var form forms.EmployeeForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if errs := h.validator.Check(form); errs != nil {
		return render(c, fiber.StatusBadRequest, "admin/employee_form", fiber.Map{"form": form, "errors": errs})
	}

	employee := &models.Employee{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Salary:    form.SalaryValue(),
	}
	if err := h.employees.CreateEmployee(employee); err != nil {
		return err
	}
	return c.Redirect("/admin/employees", fiber.StatusSeeOther)
}

func (h *AdminHandler) HandleDeleteEmployee(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.employees.DeleteEmployee(id); err != nil {
		return err
	}
	return c.Redirect("/admin/employees", fiber.StatusSeeOther)
}

// safeNext only allows redirects back into the admin pages.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/admin/") && !strings.HasPrefix(next, "/admin/login") && !strings.Contains(next, "//") {
		return next
	}
	return "/admin/students"
}
