package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator naming fields by their schema tags.
//
// Besides the rules validator/v10 ships, "langcode" checks a string is a BCP 47 or ISO 639 language code.
func newValidator() validator {
	v := v10.New(v10.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("schema"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation("langcode", validateLangCode); err != nil {
		panic(err)
	}

	return validator{v}
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// On failure, validate translates each issue to a ValidationError,
// returning them all as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	validateErrs := make(ValidationErrors, 0, len(errs))
	for _, fe := range errs {
		validateErrs = append(validateErrs, fromFieldError(fe))
	}

	return validateErrs
}

// fromFieldError names the field of fe relative to the struct validated,
// and states its rule as "tag=param; type".
func fromFieldError(fe v10.FieldError) ValidationError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return ValidationError{
		Field: field,
		Got:   fe.Value(),
		Rule:  rule + "; " + fe.Type().String(),
	}
}

func validateLangCode(fl v10.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	_, err := language.Parse(fl.Field().String())
	return err == nil
}
