package common

import "errors"

// Kind classifies an error for propagation and HTTP mapping decisions.
type Kind string

const (
	KindValidation            Kind = "validation"
	KindNotFound              Kind = "not_found"
	KindDependencyUnavailable Kind = "dependency_unavailable"
	KindConsistency           Kind = "consistency"
	KindPersistence           Kind = "persistence"
	KindServiceUnavailable    Kind = "service_unavailable"
)

// Error is the standardized error carried across layers. Code is a stable
// identifier for log correlation, Message is safe to surface to callers.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func NewError(kind Kind, code, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

func WrapError(kind Kind, code, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf extracts the Kind of err, unwrapping as needed. Errors outside
// the taxonomy report KindPersistence only when they come from a store
// layer; callers that need that distinction wrap explicitly, so unknown
// errors report an empty Kind here.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
