package application

import (
	"errors"

	"github.com/stayfront/hms_backend/internal/domain"
)

// Action is one of the lifecycle operations an operator can attempt.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCheckIn  Action = "check-in"
	ActionCheckout Action = "checkout"
	ActionCancel   Action = "cancel"
	ActionDelete   Action = "delete"
)

// Guard violations. These are detected before any mutation is attempted and
// their text is surfaced verbatim to the operator.
var (
	ErrAlreadyConfirmed   = errors.New("Booking is already confirmed")
	ErrNotConfirmed       = errors.New("Booking must be confirmed first")
	ErrAlreadyCancelled   = errors.New("Booking is already cancelled")
	ErrCancelAfterCheckIn = errors.New("Cannot cancel a booking after check-in")
	ErrCancelCheckedOut   = errors.New("Cannot cancel a checked-out booking")
	ErrNotInHouse         = errors.New("Guest is not checked in")
	ErrNotArrived         = errors.New("Booking is not awaiting arrival")
	ErrBookingClosed      = errors.New("Booking is checked out or cancelled")
)

// CanConfirm reports whether the confirmation flag may be set. Any
// not-yet-confirmed, not-cancelled booking may be confirmed.
func CanConfirm(b *domain.Booking) error {
	if b.Confirmed {
		return ErrAlreadyConfirmed
	}
	switch b.Status {
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	case domain.StatusPending, domain.StatusActive, domain.StatusCheckIn, domain.StatusCheckout:
		return nil
	}
	return errInvalidStatus(b.Status)
}

// CanCheckIn requires a confirmed booking awaiting arrival.
func CanCheckIn(b *domain.Booking) error {
	if !b.Confirmed {
		return ErrNotConfirmed
	}
	switch b.Status {
	case domain.StatusActive:
		return nil
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	case domain.StatusPending, domain.StatusCheckIn, domain.StatusCheckout:
		return ErrNotArrived
	}
	return errInvalidStatus(b.Status)
}

// CanCheckOut requires an in-house, confirmed booking.
func CanCheckOut(b *domain.Booking) error {
	if !b.Confirmed {
		return ErrNotConfirmed
	}
	switch b.Status {
	case domain.StatusCheckIn:
		return nil
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	case domain.StatusPending, domain.StatusActive, domain.StatusCheckout:
		return ErrNotInHouse
	}
	return errInvalidStatus(b.Status)
}

// CanCancel permits cancellation only before arrival. Each blocked state has
// its own accurate message.
func CanCancel(b *domain.Booking) error {
	switch b.Status {
	case domain.StatusPending, domain.StatusActive:
		return nil
	case domain.StatusCheckIn:
		return ErrCancelAfterCheckIn
	case domain.StatusCheckout:
		return ErrCancelCheckedOut
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	}
	return errInvalidStatus(b.Status)
}

// CanEdit reports whether guest, stay, room or service edits are allowed.
// Checked-out and cancelled bookings are immutable.
func CanEdit(b *domain.Booking) error {
	switch b.Status {
	case domain.StatusPending, domain.StatusActive, domain.StatusCheckIn:
		return nil
	case domain.StatusCheckout, domain.StatusCancelled:
		return ErrBookingClosed
	}
	return errInvalidStatus(b.Status)
}

// CanAttachService gates service line additions: the booking must be
// confirmed, not cancelled and not checked out.
func CanAttachService(b *domain.Booking) error {
	if !b.Confirmed {
		return ErrNotConfirmed
	}
	return CanEdit(b)
}

// Allowed returns the actions currently permitted for the booking, in the
// order the transition table lists them. Delete is always permitted.
func Allowed(b *domain.Booking) []Action {
	actions := make([]Action, 0, 5)
	if CanConfirm(b) == nil {
		actions = append(actions, ActionConfirm)
	}
	if CanCheckIn(b) == nil {
		actions = append(actions, ActionCheckIn)
	}
	if CanCheckOut(b) == nil {
		actions = append(actions, ActionCheckout)
	}
	if CanCancel(b) == nil {
		actions = append(actions, ActionCancel)
	}
	actions = append(actions, ActionDelete)
	return actions
}

func errInvalidStatus(s domain.BookingStatus) error {
	return errors.New("invalid booking status: " + string(s))
}
