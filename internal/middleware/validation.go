package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// DecodeAndValidate decodes a JSON request body and validates it against the
// struct's validation tags.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// ValidationMessage turns the first field failure into a user-facing message,
// or returns the empty string when err is not a validation error. Field
// names follow the json tags of the request structs.
func ValidationMessage(err error, messages map[string]string) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return ""
	}

	field := validationErrors[0].Field()
	if msg, ok := messages[field]; ok {
		return msg
	}
	return "Campo inválido: " + field
}
