package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is the shared validator instance. Field names in validation
// errors are taken from json tags so error maps line up with the wire
// format rather than Go struct fields.
var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidatePayload validates the given request struct and, on failure,
// returns the full per-field error map. Every failing field gets an entry
// keyed by its json name; a nil map means the payload is valid.
func ValidatePayload(v interface{}) map[string][]string {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// A non-field error (e.g. an invalid struct) still has to fail
		// validation; report it without a field name breakdown.
		return map[string][]string{"payload": {"The payload is invalid."}}
	}

	fieldErrors := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		fieldErrors[field] = append(fieldErrors[field], fieldErrorMessage(fe))
	}
	return fieldErrors
}

// fieldErrorMessage renders a single validation failure as a human-readable
// message in the style callers of this API already depend on.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", fe.Field())
	case "uuid":
		return fmt.Sprintf("The %s must be a valid identifier.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
