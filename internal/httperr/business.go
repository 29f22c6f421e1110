package httperr

import "errors"

// Business outcomes the handlers translate into responses.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeExamNotFound       = "exam_not_found"
	CodeMissingFields      = "missing_fields"
)

// BusinessError is an expected outcome, never logged as a failure.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
