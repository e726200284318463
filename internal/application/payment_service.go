package application

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayfront/hms_backend/internal/domain"
)

var (
	ErrPaymentNotPositive = errors.New("Payment amount must be greater than zero")
	ErrPaymentExceedsDue  = errors.New("Payment amount cannot exceed the due amount")
	ErrInvalidPaymentMode = errors.New("Payment mode must be Cash, Card or UPI")
)

// PaymentService records incremental payments against a booking's due
// amount. Paid and due are recomputed by the repository inside the same
// transaction, so paid never exceeds total.
type PaymentService struct {
	paymentRepo domain.PaymentRepository
	bookingRepo domain.BookingRepository
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(paymentRepo domain.PaymentRepository, bookingRepo domain.BookingRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
	}
}

// PaymentResult is the booking state after a payment was applied.
type PaymentResult struct {
	Booking   *domain.Booking `json:"booking"`
	Payment   *domain.Payment `json:"payment"`
	FullyPaid bool            `json:"fullyPaid"`
	Progress  int             `json:"progressPercent"`
}

// RecordPayment validates and applies one payment, then re-reads the
// booking for the authoritative paid/due state.
func (s *PaymentService) RecordPayment(bookingID int, amount decimal.Decimal, mode string) (*PaymentResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrPaymentNotPositive
	}
	paymentMode, ok := domain.ParsePaymentMode(mode)
	if !ok {
		return nil, ErrInvalidPaymentMode
	}

	b, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if amount.GreaterThan(b.DueAmount) {
		return nil, ErrPaymentExceedsDue
	}

	payment := &domain.Payment{
		BookingID: bookingID,
		Amount:    amount,
		Mode:      paymentMode,
		Reference: uuid.NewString(),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	updated, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{
		Booking:   updated,
		Payment:   payment,
		FullyPaid: FullyPaid(updated.DueAmount),
		Progress:  PaymentProgress(updated.TotalAmount, updated.PaidAmount),
	}, nil
}

// ListPayments returns a booking's payment history.
func (s *PaymentService) ListPayments(bookingID int) ([]domain.Payment, error) {
	if _, err := s.bookingRepo.GetByID(bookingID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByBooking(bookingID)
}
