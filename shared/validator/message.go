package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":         "{field} is required",
	"required_with":    "{field} is required when {param} is set",
	"required_without": "{field} is required when {param} is missing",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"oneof":            "{field} must be one of {param}",
	"max":              "{field} must be less than or equal to {param}",
	"min":              "{field} must be greater than or equal to {param}",
	"email":            "{field} must be a valid email address",
	"gt":               "{field} must be greater than {param}",
	"datetime":         "{field} must follow the format {param}",
	"date":             "{field} must be a date in YYYY-MM-DD format",
	"enum":             "{field} has an unsupported value",
	"uuid":             "{field} must be a valid UUID",
	"unique":           "{field} must not contain duplicates",
	"mimetypes":        "{field} must be one of {param}",
	"maxfilesize":      "{field} must not exceed {param} MB",
}

// message renders every field error, joined with "; ". Tags without a
// template fall back to the validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template))
	}

	return strings.Join(parts, "; ")
}
