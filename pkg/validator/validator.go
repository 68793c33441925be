package validator

import (
	"context"
	"errors"

	"github.com/go-playground/validator"
)

var global *validator.Validate

const (
	ErrInvalidFormat      = "Invalid format"
	ErrFieldRequired      = "Field is required"
	ErrFieldExceedsMaxLen = "Field exceeds maximum length"
	ErrFieldBelowMinLen   = "Field is below minimum length"
	ErrFieldExceedsMaxVal = "Field exceeds maximum value"
	ErrFieldBelowMinVal   = "Field is below minimum value"
	ErrUnknownValidation  = "Unknown validation error"
)

func init() {
	SetValidator(New())
}

func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("prioritylabel", validatePriorityLabel)
	_ = v.RegisterValidation("sponsortier", validateSponsorTier)
	_ = v.RegisterValidation("membertype", validateMemberType)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

func validatePriorityLabel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "high", "medium", "low":
		return true
	}
	return false
}

func validateSponsorTier(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Title", "Gold", "Silver", "Supporter":
		return true
	}
	return false
}

func validateMemberType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "student", "faculty":
		return true
	}
	return false
}

func Validate(ctx context.Context, structure any) error {
	return parseValidationErrors(Validator().StructCtx(ctx, structure))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrors) == 0 {
		return nil
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = ErrFieldRequired
	case "max":
		msg = ErrFieldExceedsMaxLen
	case "min":
		msg = ErrFieldBelowMinLen
	case "lt", "lte":
		msg = ErrFieldExceedsMaxVal
	case "gt", "gte":
		msg = ErrFieldBelowMinVal
	case "hexcolor":
		msg = "Value must be a hex color"
	case "url":
		msg = "Value must be a valid URL"
	case "prioritylabel":
		msg = "Priority must be high, medium or low"
	case "sponsortier":
		msg = "Category must be Title, Gold, Silver or Supporter"
	case "membertype":
		msg = "Type must be student or faculty"
	default:
		msg = ErrUnknownValidation
	}
	return errors.New(msg + ": " + ve.Namespace())
}
