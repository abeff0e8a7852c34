package handlers

import (
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency", validateCurrencyCode)
}

// validateCurrencyCode accepts three letters in either case.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.ParseCurrencyCode(fl.Field().String()).IsWellFormed()
}
