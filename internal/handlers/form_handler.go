package handlers

import (
	"fmt"

	"chai/internal/forms"
	"chai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// simpleFormPage is served without a template; the token is filled in per request.
const simpleFormPage = `<form method="post">
    <input type="hidden" name="csrfmiddlewaretoken" value="%s">
    <label for="text1">Textbox 1:</label>
    <input type="text" name="text1" id="text1">
    <br><br>
    <label for="text2">Textbox 2:</label>
    <input type="text" name="text2" id="text2">
    <br><br>
    <input type="submit" value="Submit">
</form>`

// FormHandler serves the form tutorial pages.
type FormHandler struct {
	validator *forms.Validator
}

// NewFormHandler creates a new instance of FormHandler.
func NewFormHandler(validator *forms.Validator) *FormHandler {
	return &FormHandler{validator: validator}
}

// RegisterRoutes mounts the form tutorial pages on router.
func (h *FormHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/contact", h.HandleContact)
	router.Post("/contact", h.HandleContact)
	router.Get("/calculator", h.HandleCalculator)
	router.Post("/calculator", h.HandleCalculator)
	router.Get("/simpleForm", h.HandleSimpleForm)
	router.Post("/simpleForm", h.HandleSimpleForm)
	router.Get("/formTemp", h.HandleFormTemplate)
	router.Post("/formTemp", h.HandleFormTemplate)
	router.Get("/form1", h.HandleInputForm)
	router.Post("/form1", h.HandleInputForm)
	router.Get("/valid", h.HandleManualValidation)
	router.Post("/valid", h.HandleManualValidation)
}

// HandleContact shows the submitted values and an empty form after a valid POST.
func (h *FormHandler) HandleContact(c *fiber.Ctx) error {
	data := fiber.Map{
		"methods":    forms.ContactMethods,
		"methodused": c.Method(),
	}
	var form forms.ContactForm
	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}
		if errs := h.validator.Check(form); errs != nil {
			data["form"] = form
			data["errors"] = errs
			return render(c, fiber.StatusBadRequest, "contactform", data)
		}
		data["submitted"] = form
		form = forms.ContactForm{}
	}
	data["form"] = form
	return render(c, fiber.StatusOK, "contactform", data)
}

// HandleCalculator keeps the submitted values in the form and shows the result below it.
func (h *FormHandler) HandleCalculator(c *fiber.Ctx) error {
	data := fiber.Map{"operations": forms.Operations}
	var form forms.CalculatorForm
	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}
		data["form"] = form
		if errs := h.validator.Check(form); errs != nil {
			data["errors"] = errs
			return render(c, fiber.StatusBadRequest, "calculator", data)
		}
		a, b := form.Operands()
		result, err := services.Calculate(a, b, form.Operation)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		data["result"] = result.String()
		return render(c, fiber.StatusOK, "calculator", data)
	}
	data["form"] = form
	return render(c, fiber.StatusOK, "calculator", data)
}

func (h *FormHandler) HandleSimpleForm(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return c.SendString(fmt.Sprintf("The values are %s and %s", c.FormValue("text1"), c.FormValue("text2")))
	}
	token, _ := c.Locals("csrf").(string)
	c.Type("html")
	return c.SendString(fmt.Sprintf(simpleFormPage, token))
}

// HandleFormTemplate answers in plain text once all three fields are filled,
// otherwise it shows the form again.
func (h *FormHandler) HandleFormTemplate(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		name, email, password := c.FormValue("name1"), c.FormValue("email1"), c.FormValue("password1")
		if name != "" && email != "" && password != "" {
			return c.SendString(fmt.Sprintf("Form submitted with name %s and id %s", name, email))
		}
	}
	return render(c, fiber.StatusOK, "forms", nil)
}

func (h *FormHandler) HandleInputForm(c *fiber.Ctx) error {
	var form forms.InputForm
	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}
		errs := h.validator.Check(form)
		if errs == nil {
			return c.SendString("form submitted successfully")
		}
		return render(c, fiber.StatusBadRequest, "form1", fiber.Map{"form": form, "errors": errs})
	}
	return render(c, fiber.StatusOK, "form1", fiber.Map{"form": form})
}

// HandleManualValidation checks the fields by hand and re-displays what was typed.
func (h *FormHandler) HandleManualValidation(c *fiber.Ctx) error {
	var form forms.ManualForm
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "valid", fiber.Map{"form": form})
	}
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	if errs := forms.CheckManual(form); errs != nil {
		return render(c, fiber.StatusBadRequest, "valid", fiber.Map{"form": form, "errors": errs})
	}
	return render(c, fiber.StatusOK, "valid", fiber.Map{"form": forms.ManualForm{}, "submitted": form})
}
