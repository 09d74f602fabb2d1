package api

import (
	"fmt"
	"strings"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateNotBlank в отличии от required не пропускает строки из одних пробелов.
func validateNotBlank(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(str) != ""
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.CategoryType(fl.Field().String()).IsValid()
}

func validateRole(fl validator.FieldLevel) bool {
	return domain.RoleType(fl.Field().String()).IsValid()
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	validations := map[string]validator.Func{
		"not_blank": validateNotBlank,
		"category":  validateCategory,
		"role":      validateRole,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}
