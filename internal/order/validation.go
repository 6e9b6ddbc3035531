package order

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameRequired      = "Name is required"
	MsgAddressRequired   = "Address is required"
	MsgCityRequired      = "City is required"
	MsgProvinceRequired  = "Province is required"
	MsgProvinceCode      = "Province must be a 2-letter code"
	MsgPhone             = "Phone number must be 10 digits"
	MsgProductsRequired  = "At least one product must be selected"
	MsgQuantityNotNumber = "Quantity must be a whole number"
	MsgQuantityMismatch  = "Each product needs a quantity"
	MsgInvalidForm       = "Invalid form submission"
)

// FieldError is one entry of a 400 validation response.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"   example:"phone"`
	Message string `json:"message" example:"Phone number must be 10 digits"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var formFields = map[string]string{
	"Name":       "name",
	"Address":    "address",
	"City":       "city",
	"Province":   "province",
	"Phone":      "phone",
	"Products":   "products",
	"Quantities": "quantities",
}

// ValidationErrorsFrom translates a binding error into per-field messages.
// A nil error gives nil; errors that are not validator failures (a body that
// could not be parsed at all) become a single form-level entry.
func ValidationErrorsFrom(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "form", Message: MsgInvalidForm}}
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldName(fe.StructField()), Message: messageFor(fe)})
	}
	return out
}

func fieldName(structField string) string {
	if name, ok := formFields[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}

func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return MsgNameRequired
	case "Address":
		return MsgAddressRequired
	case "City":
		return MsgCityRequired
	case "Province":
		if fe.Tag() == "required" {
			return MsgProvinceRequired
		}
		return MsgProvinceCode
	case "Phone":
		return MsgPhone
	case "Products":
		return MsgProductsRequired
	default:
		return fe.Field() + " is invalid"
	}
}
