package validation

import (
	"fmt"
	"strings"

	"taskflow/internal/common/errors"
)

// Validator collects failures for parameters that arrive outside a struct,
// such as path values and caller ids. Checks chain; Error reports them all.
type Validator struct {
	failures []string
}

func NewValidator() *Validator {
	return &Validator{}
}

// RequireString fails on an empty or blank value
func (v *Validator) RequireString(value, name string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail("%s is required", name)
	}
	return v
}

// RequireEmail checks value with the same rule the struct tags use
func (v *Validator) RequireEmail(value, name string) *Validator {
	if value == "" {
		v.fail("%s is required", name)
		return v
	}
	if err := globalValidator.validator.Var(value, "email"); err != nil {
		v.fail("%s must be a valid email address", name)
	}
	return v
}

// RequirePositive fails on ids that cannot exist
func (v *Validator) RequirePositive(value int64, name string) *Validator {
	if value <= 0 {
		v.fail("%s must be positive", name)
	}
	return v
}

// RequireNonNegative fails on negative positions
func (v *Validator) RequireNonNegative(value int, name string) *Validator {
	if value < 0 {
		v.fail("%s must be non-negative", name)
	}
	return v
}

func (v *Validator) fail(format string, args ...interface{}) {
	v.failures = append(v.failures, fmt.Sprintf(format, args...))
}

func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Error returns a validation AppError, or nil when every check passed
func (v *Validator) Error() error {
	switch len(v.failures) {
	case 0:
		return nil
	case 1:
		return errors.ValidationError(v.failures[0])
	default:
		return errors.ValidationError("validation failed: " + strings.Join(v.failures, "; "))
	}
}
