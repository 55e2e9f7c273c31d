package validation

import "fmt"

// Reason is the machine-checkable code carried by a ValidationError.
type Reason string

const (
	InvalidCPF               Reason = "InvalidCPF"
	InvalidName              Reason = "InvalidName"
	InvalidDate              Reason = "InvalidDate"
	InvalidEmail             Reason = "InvalidEmail"
	InvalidProfession        Reason = "InvalidProfession"
	InvalidEducation         Reason = "InvalidEducation"
	EmptyAddressList         Reason = "EmptyAddressList"
	InvalidPhoneNumber       Reason = "InvalidPhoneNumber"
	InvalidContributionType  Reason = "InvalidContributionType"
	InvalidContributionValue Reason = "InvalidContributionValue"
	InvalidDateRange         Reason = "InvalidDateRange"
)

type ValidationError struct {
	Field  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newError(field string, reason Reason) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
