package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoomAvailable   = "available"
	RoomUnavailable = "unavailable"
)

// Room represents a rentable room. Price is the nightly rate; billing
// snapshots it at mutation time rather than following later rate changes.
type Room struct {
	ID           int             `json:"id"`
	Number       string          `json:"number"`
	Type         string          `json:"type"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	MinOccupancy int             `json:"minOccupancy"`
	MaxOccupancy int             `json:"maxOccupancy"`
	PhotoURL     string          `json:"photoUrl,omitempty"`
}

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	// GetAll returns all rooms in the system
	GetAll() ([]Room, error)
	// GetByID returns a single room
	GetByID(id int) (*Room, error)
	// GetAvailable returns rooms free for the whole [checkIn, checkOut)
	// window that fit partySize. excludeBookingID ignores that booking's
	// own occupancy so a booking can move within its current window.
	GetAvailable(checkIn, checkOut time.Time, partySize int, excludeBookingID int) ([]Room, error)
	// Create inserts a room and sets its generated ID.
	Create(room *Room) error
	// Update rewrites the mutable room fields.
	Update(room *Room) error
	// Delete removes a room. Fails if bookings reference it.
	Delete(id int) error
	// SetPhotoURL stores the uploaded photo location.
	SetPhotoURL(id int, url string) error
}
