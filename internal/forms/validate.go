package forms

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Get returns the message for field, or "" when the field is valid.
func (e FieldErrors) Get(field string) string { return e[field] }

// Any reports whether at least one field failed.
func (e FieldErrors) Any() bool { return len(e) > 0 }

// Validator checks form structs against their `validate` tags and reports
// failures keyed by the `form` tag of each field.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the float and integer rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("float", isFloat)
	_ = v.RegisterValidation("integer", isInteger)
	return &Validator{validate: v}
}

// Check validates s and returns nil when every rule passes. String fields
// are checked with surrounding whitespace removed, so a blank "   " fails
// required; s itself is left untouched.
func (v *Validator) Check(s interface{}) FieldErrors {
	err := v.validate.Struct(trimmed(s))
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"__all__": err.Error()}
	}
	out := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), length(fe.Value()))
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters (it has %d).", fe.Param(), length(fe.Value()))
	case "oneof":
		return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
	case "float":
		return "Enter a number."
	case "integer":
		return "Enter a whole number."
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

func length(v interface{}) int {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}
	return 0
}

func isFloat(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// trimmed returns a copy of the struct behind s with every settable string
// field trimmed. Anything that is not a struct or struct pointer is returned as is.
func trimmed(s interface{}) interface{} {
	rv := reflect.ValueOf(s)
	isPtr := rv.Kind() == reflect.Ptr
	if isPtr {
		if rv.IsNil() {
			return s
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return s
	}

	cp := reflect.New(rv.Type()).Elem()
	cp.Set(rv)
	for i := 0; i < cp.NumField(); i++ {
		if f := cp.Field(i); f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
	if isPtr {
		return cp.Addr().Interface()
	}
	return cp.Interface()
}
