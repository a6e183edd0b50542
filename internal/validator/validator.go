// internal/validator/validator.go
package validator

import (
	"cardhawk/internal/domain"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var (
	nonBlank   = regexp.MustCompile(`\S`)
	quarterKey = regexp.MustCompile(`^Q[1-4]-\d{4}$`)
	category   = regexp.MustCompile(`^[a-z][a-z_-]*$`)
)

func init() {
	Validate = validator.New()

	// Non-empty and not only whitespace
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})

	// Quarter key: "Q2-2025"
	_ = Validate.RegisterValidation("quarterkey", func(fl validator.FieldLevel) bool {
		return quarterKey.MatchString(fl.Field().String())
	})

	// Category key: lowercase tag such as "dining" or "gas"
	_ = Validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return category.MatchString(fl.Field().String())
	})

	_ = Validate.RegisterValidation("network", func(fl validator.FieldLevel) bool {
		return domain.Network(fl.Field().String()).IsValid()
	})
}
