package console

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"moviecatalog/errs"
)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("integer", validateInteger)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Errorf(errs.EINVALID, "%s", formatValidationError(err))
	}
	return nil
}

func validateInteger(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

func formatValidationError(err error) string {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return "validation error"
	}
	parts := make([]string, 0, len(ves))
	for _, fe := range ves {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "integer":
			parts = append(parts, fe.Field()+" must be a whole number")
		default:
			parts = append(parts, fe.Field()+" failed on "+fe.Tag())
		}
	}
	return "validation error: " + strings.Join(parts, "; ")
}
