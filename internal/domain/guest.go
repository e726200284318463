package domain

// BookingGuest is a member of a booking's guest roster. The roster is
// informational and has no effect on the booking lifecycle.
type BookingGuest struct {
	ID        int    `json:"id"`
	BookingID int    `json:"bookingId"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Primary   bool   `json:"primary"`
}

// BookingGuestRepository defines operations with a booking's guest roster.
type BookingGuestRepository interface {
	// ListByBooking returns a booking's guests, primary first.
	ListByBooking(bookingID int) ([]BookingGuest, error)
	// Create inserts a guest and sets its generated ID.
	Create(guest *BookingGuest) error
	// Update rewrites a guest's fields.
	Update(guest *BookingGuest) error
	// Delete removes a guest from the roster.
	Delete(id int) error
	// DeleteByBooking removes the whole roster of a booking.
	DeleteByBooking(bookingID int) error
}
