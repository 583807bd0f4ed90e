package handlers

import (
	"errors"

	"chai/internal/forms"
	"chai/internal/models"
	"chai/internal/repositories"
	"chai/internal/services"

	"github.com/gofiber/fiber/v2"
)

const duplicateEmailMessage = "Signup record with this Email already exists."

// SignupHandler serves the three signup pages and the edit/delete routes.
// Edit and delete are not authenticated.
type SignupHandler struct {
	service   *services.SignupService
	validator *forms.Validator
}

// NewSignupHandler creates a new instance of SignupHandler.
func NewSignupHandler(service *services.SignupService, validator *forms.Validator) *SignupHandler {
	return &SignupHandler{service: service, validator: validator}
}

// RegisterRoutes mounts the signup pages on router.
func (h *SignupHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/signup", h.HandleRawSignup)
	router.Post("/signup", h.HandleRawSignup)
	router.Get("/signup1", h.HandleSignupForm)
	router.Post("/signup1", h.HandleSignupForm)
	router.Get("/signup2", h.HandleModelSignup)
	router.Post("/signup2", h.HandleModelSignup)
	router.Get("/edit/:id<int>", h.HandleEdit)
	router.Post("/edit/:id<int>", h.HandleEdit)
	router.Get("/delete/:id<int>", h.HandleDelete)
	router.Post("/delete/:id<int>", h.HandleDelete)
}

// HandleRawSignup stores the posted fields without any validation.
func (h *SignupHandler) HandleRawSignup(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "signup", fiber.Map{"account_created": false})
	}
	record := &models.SignupRecord{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := h.service.Register(record); err != nil {
		if errors.Is(err, repositories.ErrConstraintViolation) {
			return render(c, fiber.StatusConflict, "signup", fiber.Map{
				"account_created": false,
				"errors":          forms.FieldErrors{"email": duplicateEmailMessage},
			})
		}
		return err
	}
	return render(c, fiber.StatusOK, "signup", fiber.Map{"account_created": true})
}

func (h *SignupHandler) HandleSignupForm(c *fiber.Ctx) error {
	var form forms.SignupForm
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "signup1", fiber.Map{"form": form, "account_created": false})
	}
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if errs := h.validator.Check(form); errs != nil {
		return render(c, fiber.StatusBadRequest, "signup1", fiber.Map{"form": form, "errors": errs, "account_created": false})
	}

	record := &models.SignupRecord{Username: form.Username, Email: form.Email, Password: form.Password}
	if err := h.service.Register(record); err != nil {
		if errors.Is(err, repositories.ErrConstraintViolation) {
			return render(c, fiber.StatusConflict, "signup1", fiber.Map{
				"form":            form,
				"errors":          forms.FieldErrors{"email": duplicateEmailMessage},
				"account_created": false,
			})
		}
		return err
	}
	return render(c, fiber.StatusOK, "signup1", fiber.Map{"form": form, "account_created": true})
}

// HandleModelSignup validates the record itself and lists every account.
func (h *SignupHandler) HandleModelSignup(c *fiber.Ctx) error {
	var record models.SignupRecord
	status := fiber.StatusOK
	data := fiber.Map{"account_created": false}

	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(&record); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}
		record.ID = 0
		if errs := h.validator.Check(record); errs != nil {
			status = fiber.StatusBadRequest
			data["errors"] = errs
		} else if err := h.service.Register(&record); err != nil {
			if !errors.Is(err, repositories.ErrConstraintViolation) {
				return err
			}
			status = fiber.StatusConflict
			data["errors"] = forms.FieldErrors{"email": duplicateEmailMessage}
		} else {
			data["account_created"] = true
		}
	}

	users, err := h.service.List()
	if err != nil {
		return err
	}
	data["form"] = record
	data["users"] = users
	return render(c, status, "signup2", data)
}

// HandleEdit pre-fills the form on GET and redirects to the listing after a
// successful update.
func (h *SignupHandler) HandleEdit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	record, err := h.service.Get(id)
	if err != nil {
		return err
	}
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "update_form", fiber.Map{"form": record, "id": id})
	}

	// Only the submitted fields count; omitted ones must fail validation
	// rather than keep their stored values.
	var submitted models.SignupRecord
	if err := c.BodyParser(&submitted); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	submitted.ID = record.ID
	if errs := h.validator.Check(submitted); errs != nil {
		return render(c, fiber.StatusBadRequest, "update_form", fiber.Map{"form": submitted, "id": id, "errors": errs})
	}
	if err := h.service.Update(&submitted); err != nil {
		if errors.Is(err, repositories.ErrConstraintViolation) {
			return render(c, fiber.StatusConflict, "update_form", fiber.Map{
				"form":   submitted,
				"id":     id,
				"errors": forms.FieldErrors{"email": duplicateEmailMessage},
			})
		}
		return err
	}
	return c.Redirect("/chai/signup2/", fiber.StatusFound)
}

// HandleDelete removes the record and redirects to the listing.
func (h *SignupHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(id); err != nil {
		return err
	}
	return c.Redirect("/chai/signup2/", fiber.StatusFound)
}
