package forms

import (
	"strconv"
	"strings"
)

// ContactMethods are the allowed values of ContactForm.ContactMethod, in display order.
var ContactMethods = []Choice{
	{Value: "email", Label: "Email"},
	{Value: "phone", Label: "Phone"},
	{Value: "both", Label: "Both"},
}

// Operations are the calculator operations, in display order.
var Operations = []Choice{
	{Value: "add", Label: "Add (+)"},
	{Value: "sub", Label: "Subtract (−)"},
	{Value: "mul", Label: "Multiply (×)"},
	{Value: "div", Label: "Divide (÷)"},
	{Value: "mod", Label: "Modulus (%)"},
}

// Choice is one option of an enumerated field.
type Choice struct {
	Value string
	Label string
}

type ContactForm struct {
	Name          string `form:"name" validate:"required,max=100"`
	Email         string `form:"email" validate:"required,email"`
	Message       string `form:"message" validate:"required"`
	ContactMethod string `form:"contactmethod" validate:"required,oneof=email phone both"`
}

// CalculatorForm keeps the operands as text so malformed numbers produce a
// field error instead of a binding failure.
type CalculatorForm struct {
	Number1   string `form:"number1" validate:"required,float"`
	Number2   string `form:"number2" validate:"required,float"`
	Operation string `form:"operation" validate:"required,oneof=add sub mul div mod"`
}

// Operands parses both numbers. Only call it after the form validated.
func (f CalculatorForm) Operands() (float64, float64) {
	a, _ := strconv.ParseFloat(strings.TrimSpace(f.Number1), 64)
	b, _ := strconv.ParseFloat(strings.TrimSpace(f.Number2), 64)
	return a, b
}

type InputForm struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email,max=100"`
	Password string `form:"password" validate:"required"`
}

// SignupForm is the hand-written signup form; signup2 validates the model itself.
type SignupForm struct {
	Username string `form:"username" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type EmployeeForm struct {
	FirstName string `form:"first_name" validate:"required,max=255"`
	LastName  string `form:"last_name" validate:"required,max=255"`
	Salary    string `form:"salary" validate:"required,integer"`
}

// SalaryValue parses Salary. Only call it after the form validated.
func (f EmployeeForm) SalaryValue() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.Salary))
	return n
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
