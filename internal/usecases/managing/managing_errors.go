package managing

import "errors"

var (
	ErrInvalidPromoterID       = errors.New("invalid promoter id")
	ErrPromoterNotFound        = errors.New("promoter not found")
	ErrInvalidContestAction    = errors.New("invalid contest action")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrNewPromoterRequired     = errors.New("new promoter id is required")
)
