package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"credfacil-backend/internal/domain/application"
	flowDomain "credfacil-backend/internal/domain/flow"
	"credfacil-backend/internal/domain/settings"
	"credfacil-backend/internal/usecase/admin"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// money = string that parses as a non-negative decimal amount
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "money":
			out = append(out, FieldError{Field: field, Message: "must be a non-negative decimal amount"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// errorStatus maps usecase/domain errors to an HTTP status + payload.
// Every failure is surfaced here exactly once; nothing propagates as an
// unhandled fault.
func errorStatus(err error) (int, ErrorResponse) {
	var ve *flowDomain.ValidationError
	if errors.As(err, &ve) {
		return 422, ErrorResponse{
			Error:   ve.Message,
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		}
	}
	switch {
	case errors.Is(err, flowDomain.ErrNotReady):
		return 503, ErrorResponse{Error: err.Error()}
	case errors.Is(err, flowDomain.ErrInvalidStep):
		return 409, ErrorResponse{Error: err.Error()}
	case errors.Is(err, flowDomain.ErrSessionNotFound):
		return 404, ErrorResponse{Error: err.Error()}
	case errors.Is(err, application.ErrNotFound), errors.Is(err, settings.ErrNotFound):
		return 404, ErrorResponse{Error: err.Error()}
	case errors.Is(err, admin.ErrInvalidAmount):
		return 422, ErrorResponse{Error: err.Error()}
	}
	return 500, ErrorResponse{Error: err.Error()}
}
