package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	PaymentModeCash PaymentMode = "Cash"
	PaymentModeCard PaymentMode = "Card"
	PaymentModeUPI  PaymentMode = "UPI"
)

// Payment is one incremental payment recorded against a booking's due amount.
type Payment struct {
	ID        int             `json:"id"`
	BookingID int             `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Mode      PaymentMode     `json:"mode"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ParsePaymentMode validates a raw payment mode string.
func ParsePaymentMode(s string) (PaymentMode, bool) {
	switch PaymentMode(s) {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI:
		return PaymentMode(s), true
	default:
		return "", false
	}
}

// PaymentRepository defines operations with payments.
type PaymentRepository interface {
	// Create inserts a payment and applies it to the booking's paid and
	// due amounts in one transaction.
	Create(payment *Payment) error
	// ListByBooking returns a booking's payments, oldest first.
	ListByBooking(bookingID int) ([]Payment, error)
}
