package validator

import (
	"encoding/json"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const bytesPerMB = 1 << 20

var validate *val.Validate

// aliases are tag shorthands used by the request DTOs.
var aliases = map[string]string{
	"date": "datetime=" + constant.DateOnlyFormat,
}

var validations = map[string]val.Func{
	"enum":        validateEnum,
	"empty":       func(fl val.FieldLevel) bool { return fl.Field().IsZero() },
	"mimetypes":   validateMimetype,
	"maxfilesize": validateFileSize,
}

func fileHeader(field val.FieldLevel) (multipart.FileHeader, bool) {
	file, ok := field.Field().Interface().(multipart.FileHeader)

	return file, ok
}

func validateMimetype(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)

	return contentType != "" && slices.Contains(strings.Fields(field.Param()), contentType)
}

// validateFileSize takes its limit in megabytes, fractions allowed.
func validateFileSize(field val.FieldLevel) bool {
	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	file, ok := fileHeader(field)

	return !ok || float64(file.Size) <= limit*bytesPerMB
}

// validateEnum accepts values whose type exposes IsValid() bool, such as
// booking statuses parsed from request bodies.
func validateEnum(fl val.FieldLevel) bool {
	method := fl.Field().MethodByName("IsValid")
	if !method.IsValid() || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
		return false
	}

	valid, _ := method.Call(nil)[0].Interface().(bool)

	return valid
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	for alias, tags := range aliases {
		validate.RegisterAlias(alias, tags)
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Both decode and
// validation problems come back as bad request failures.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
