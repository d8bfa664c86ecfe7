package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	val "github.com/go-playground/validator/v10"

	"packshift/shared/failure"
)

var validate *val.Validate

var (
	// Letters and whitespace only, minimum length 3.
	personNameRegex = regexp.MustCompile(`^[A-Za-z\s]{3,}$`)
	// Exactly 10 digits, leading digit 6-9.
	phoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

func registerPersonNameValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return personNameRegex.MatchString(value)
}

func registerPhoneValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return phoneRegex.MatchString(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("personname", registerPersonNameValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("inphone", registerPhoneValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
