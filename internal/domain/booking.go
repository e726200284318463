package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking. The set is closed;
// unknown strings must be rejected at the parsing boundary.
type BookingStatus string

const (
	// StatusPending is an unconfirmed booking.
	StatusPending BookingStatus = "pending"
	// StatusActive is confirmed but the guest has not arrived yet.
	StatusActive BookingStatus = "active"
	// StatusCheckIn means the guest is in-house.
	StatusCheckIn BookingStatus = "check-in"
	// StatusCheckout means the stay is over.
	StatusCheckout BookingStatus = "checkout"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw status string against the closed set.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusActive, StatusCheckIn, StatusCheckout, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("invalid booking status: %q", s)
	}
}

// Booking is a guest's reserved stay with its lifecycle status and financials.
// TotalAmount is always RoomCost plus the sum of service line totals;
// DueAmount is always TotalAmount minus PaidAmount. Repositories recompute
// both on every financial mutation so the invariants hold server-side.
type Booking struct {
	ID           int           `json:"id"`
	GuestName    string        `json:"guestName"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	PartySize    int           `json:"partySize"`
	CheckInDate  time.Time     `json:"checkInDate"`
	CheckOutDate time.Time     `json:"checkOutDate"`
	RoomID       int           `json:"roomId"`
	Room         *Room         `json:"room,omitempty"`
	Status       BookingStatus `json:"status"`
	Confirmed    bool          `json:"confirmed"`

	RoomCost    decimal.Decimal `json:"roomCost"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	DueAmount   decimal.Decimal `json:"dueAmount"`

	Guests   []BookingGuest `json:"guests,omitempty"`
	Services []ServiceLine  `json:"services,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingRepository defines the storage operations for bookings.
type BookingRepository interface {
	// GetByID returns a booking with its room, guests and service lines.
	GetByID(id int) (*Booking, error)
	// List returns all bookings with their room joined.
	List() ([]Booking, error)
	// Create inserts a booking and sets its generated ID.
	Create(booking *Booking) error
	// UpdateGuestInfo updates the primary guest contact fields.
	UpdateGuestInfo(id int, name, phone, email string, partySize int) error
	// UpdateStatus sets the lifecycle status.
	UpdateStatus(id int, status BookingStatus) error
	// Confirm sets the confirmation flag and moves the booking to status.
	Confirm(id int, status BookingStatus) error
	// UpdateStay moves the check-out date and applies the signed billing
	// delta to the room cost, recomputing total and due.
	UpdateStay(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error
	// ChangeRoom swaps the assigned room and replaces the room cost
	// component, recomputing total and due.
	ChangeRoom(id int, newRoomID int, newRoomCost decimal.Decimal) error
	// Delete removes the booking and its dependent rows. Irreversible.
	Delete(id int) error
	// CompleteExpired marks in-house bookings past their check-out date as
	// checked out. Returns the number of bookings updated.
	CompleteExpired(now time.Time) (int, error)
}
