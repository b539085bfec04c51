package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FAQRequest is the input of the FAQ fragment endpoint.
type FAQRequest struct {
	Index int  `param:"index" validate:"min=0"`
	Open  bool `query:"open"`
}

// CheckoutRequest is the input of the tracked checkout redirect.
type CheckoutRequest struct {
	// From names the call to action that was clicked.
	From string `query:"from" validate:"omitempty,max=64,alphanum"`
}
