package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/quantrkucb/OrderBookVisualiser/models"
)

var (
	validate     *validator.Validate
	onceValidate sync.Once
)

// GetValidator returns the shared validator with the "side" rule registered
// (accepts "B"/"S" in either case).
func GetValidator() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("side", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseSide(fl.Field().String())
			return ok
		})
	})
	return validate
}
