package repository

import (
	"database/sql"
	"fmt"

	"github.com/stayfront/hms_backend/internal/domain"
)

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts the payment and applies it to the booking's paid and due
// amounts in one transaction, so due = total - paid always holds.
func (r *paymentRepository) Create(payment *domain.Payment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO payments (booking_id, amount, mode, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, payment.BookingID, payment.Amount, string(payment.Mode), payment.Reference).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	result, err := tx.Exec(`
		UPDATE bookings
		SET paid_amount = paid_amount + $2,
		    due_amount = total_amount - (paid_amount + $2)
		WHERE id = $1
	`, payment.BookingID, payment.Amount)
	if err != nil {
		return fmt.Errorf("failed to apply payment: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("booking with ID %d not found", payment.BookingID)
	}

	return tx.Commit()
}

// ListByBooking returns a booking's payments, oldest first.
func (r *paymentRepository) ListByBooking(bookingID int) ([]domain.Payment, error) {
	rows, err := r.db.Query(`
		SELECT id, booking_id, amount, mode, reference, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at, id
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var mode string
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &mode, &p.Reference, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Mode = domain.PaymentMode(mode)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
