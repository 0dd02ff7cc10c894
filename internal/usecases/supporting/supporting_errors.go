package supporting

import "errors"

var (
	ErrFAQNotFound       = errors.New("faq item not found")
	ErrErrorCodeNotFound = errors.New("error code not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrStatusRegression  = errors.New("ticket status cannot move backwards")
	ErrInvalidUserType   = errors.New("invalid user type")
	ErrGenerateID        = errors.New("error generating id")
)
