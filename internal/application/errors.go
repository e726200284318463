package application

import "errors"

// guardViolations are the business-rule rejections detected before any
// mutation is attempted. Callers map them onto conflict responses; every
// other error is a validation or infrastructure failure.
var guardViolations = []error{
	ErrAlreadyConfirmed,
	ErrNotConfirmed,
	ErrAlreadyCancelled,
	ErrCancelAfterCheckIn,
	ErrCancelCheckedOut,
	ErrNotInHouse,
	ErrNotArrived,
	ErrBookingClosed,
	ErrPaymentExceedsDue,
	ErrServiceInactive,
}

// IsGuardViolation reports whether err is a lifecycle or billing guard
// rejection.
func IsGuardViolation(err error) bool {
	for _, guard := range guardViolations {
		if errors.Is(err, guard) {
			return true
		}
	}
	return false
}
