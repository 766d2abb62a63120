package serrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BaseError is the standard structured error carried across service and
// controller boundaries. Code is a stable machine-readable identifier,
// Message is operator-facing, LocaleKey addresses a translated message.
type BaseError struct {
	Code         string
	Message      string
	LocaleKey    string
	TemplateData map[string]string

	cause error
}

func NewError(code, message, localeKey string) *BaseError {
	return &BaseError{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches two BaseErrors by Code so sentinel-style comparisons with
// errors.Is work across wrapped chains.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func (e *BaseError) WithTemplateData(data map[string]string) *BaseError {
	c := *e
	c.TemplateData = data
	return &c
}

func (e *BaseError) Wrap(cause error) *BaseError {
	c := *e
	c.cause = cause
	return &c
}

// CodeOf extracts the structured code from err, or "" when err carries none.
func CodeOf(err error) string {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Code
	}
	return ""
}

// ValidationErrors maps a field name to its structured error.
type ValidationErrors map[string]*BaseError

// ProcessValidatorErrors converts go-playground validator errors into
// structured per-field errors. getFieldLocaleKey may return "" when no
// translation exists for a field.
func ProcessValidatorErrors(errs validator.ValidationErrors, getFieldLocaleKey func(field string) string) map[string]*BaseError {
	out := make(map[string]*BaseError, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = NewError(
			"VALIDATION_"+fe.Tag(),
			fmt.Sprintf("field %s failed on the %q rule", fe.Field(), fe.Tag()),
			getFieldLocaleKey(fe.Field()),
		).WithTemplateData(map[string]string{
			"Field": fe.Field(),
			"Rule":  fe.Tag(),
			"Param": fe.Param(),
		})
	}
	return out
}
