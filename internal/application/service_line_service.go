package application

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stayfront/hms_backend/internal/domain"
)

var (
	ErrQuantityNotPositive = errors.New("Quantity must be at least 1")
	ErrServiceInactive     = errors.New("Service is no longer offered")
)

// ServiceLineService manages purchased add-on lines against a booking. The
// catalog unit price is snapshotted when a line is created; edits always
// reuse the snapshot so later catalog price changes never reprice a
// purchase.
type ServiceLineService struct {
	lineRepo    domain.ServiceLineRepository
	catalogRepo domain.HotelServiceRepository
	bookingRepo domain.BookingRepository
}

// NewServiceLineService creates a new service line service instance.
func NewServiceLineService(
	lineRepo domain.ServiceLineRepository,
	catalogRepo domain.HotelServiceRepository,
	bookingRepo domain.BookingRepository,
) *ServiceLineService {
	return &ServiceLineService{
		lineRepo:    lineRepo,
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
	}
}

// AddService attaches a catalog service to a booking. Guarded: the booking
// must be confirmed, not cancelled and not checked out.
func (s *ServiceLineService) AddService(bookingID, serviceID, quantity int) (*domain.Booking, error) {
	if quantity < 1 {
		return nil, ErrQuantityNotPositive
	}

	b, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := CanAttachService(b); err != nil {
		return nil, err
	}

	svc, err := s.catalogRepo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service %d: %w", serviceID, err)
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	line := &domain.ServiceLine{
		BookingID:  bookingID,
		ServiceID:  serviceID,
		Quantity:   quantity,
		UnitPrice:  svc.Price,
		TotalPrice: svc.Price.Mul(decimal.NewFromInt(int64(quantity))),
		PaidAmount: decimal.Zero,
	}
	if err := s.lineRepo.Create(line); err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return s.bookingRepo.GetByID(bookingID)
}

// EditService updates a line's quantity and paid amount. The total is
// recomputed from the purchase-time unit price.
func (s *ServiceLineService) EditService(bookingID, lineID, quantity int, paidAmount decimal.Decimal) (*domain.Booking, error) {
	if quantity < 1 {
		return nil, ErrQuantityNotPositive
	}
	if paidAmount.IsNegative() {
		return nil, fmt.Errorf("paid amount cannot be negative")
	}

	b, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := CanEdit(b); err != nil {
		return nil, err
	}

	line, err := s.lineRepo.GetByID(lineID)
	if err != nil {
		return nil, err
	}
	if line.BookingID != bookingID {
		return nil, fmt.Errorf("service line %d does not belong to booking %d", lineID, bookingID)
	}

	line.Quantity = quantity
	line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	line.PaidAmount = paidAmount
	if err := s.lineRepo.Update(line); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.bookingRepo.GetByID(bookingID)
}

// RemoveService deletes a line. No status guard; removal is allowed in any
// state and the deletion is confirmed by the caller.
func (s *ServiceLineService) RemoveService(bookingID, lineID int) (*domain.Booking, error) {
	line, err := s.lineRepo.GetByID(lineID)
	if err != nil {
		return nil, err
	}
	if line.BookingID != bookingID {
		return nil, fmt.Errorf("service line %d does not belong to booking %d", lineID, bookingID)
	}
	if err := s.lineRepo.Delete(lineID); err != nil {
		return nil, fmt.Errorf("failed to remove service: %w", err)
	}
	return s.bookingRepo.GetByID(bookingID)
}

// ListServices returns a booking's service lines.
func (s *ServiceLineService) ListServices(bookingID int) ([]domain.ServiceLine, error) {
	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		return nil, err
	}
	return s.lineRepo.ListByBooking(bookingID)
}
