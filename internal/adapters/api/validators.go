package api

import (
	"fmt"

	"forecastsync.app/internal/core/forecast"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules used by request structs
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("datasource", validateDataSource); err != nil {
		return fmt.Errorf("register datasource validator: %w", err)
	}
	return nil
}

// validateDataSource accepts a provider name or "composite"
func validateDataSource(fl validator.FieldLevel) bool {
	_, ok := forecast.DataSourceFromString(fl.Field().String())
	return ok
}
