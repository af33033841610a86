package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	Validate *validator.Validate
	once     sync.Once

	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern     = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneDecorations = regexp.MustCompile(`[\s\-\(\)]`)
)

func InitValidator() {
	once.Do(func() {
		Validate = validator.New()
		_ = Validate.RegisterValidation("notblank", validators.NotBlank)
		_ = Validate.RegisterValidation("reservation_email", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})
		_ = Validate.RegisterValidation("reservation_phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

// FieldErrors flattens validator errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsPhone accepts an optional leading + and up to 16 digits once spaces,
// dashes and parentheses are stripped.
func IsPhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

func NormalizePhone(s string) string {
	return phoneDecorations.ReplaceAllString(s, "")
}
