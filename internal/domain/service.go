package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HotelService is a catalog entry for a purchasable add-on.
type HotelService struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

// ServiceLine is a purchased service attached to a booking. UnitPrice is the
// catalog price snapshotted at purchase time; edits reuse the snapshot, never
// the live catalog price.
type ServiceLine struct {
	ID         int             `json:"id"`
	BookingID  int             `json:"bookingId"`
	ServiceID  int             `json:"serviceId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// HotelServiceRepository defines catalog operations.
type HotelServiceRepository interface {
	// GetAll returns every active catalog service.
	GetAll() ([]HotelService, error)
	// GetByID returns a catalog service, active or not.
	GetByID(id int) (*HotelService, error)
	// Create inserts a catalog service.
	Create(service *HotelService) error
	// Update rewrites a catalog service.
	Update(service *HotelService) error
	// Delete deactivates a catalog service (logical delete).
	Delete(id int) error
}

// ServiceLineRepository defines operations on purchased service lines.
// Every mutation recomputes the owning booking's total and due amounts.
type ServiceLineRepository interface {
	// ListByBooking returns a booking's service lines, oldest first.
	ListByBooking(bookingID int) ([]ServiceLine, error)
	// GetByID returns a single service line.
	GetByID(id int) (*ServiceLine, error)
	// Create inserts a line and sets its generated ID.
	Create(line *ServiceLine) error
	// Update rewrites quantity, total and paid amount of a line.
	Update(line *ServiceLine) error
	// Delete removes a line.
	Delete(id int) error
}
