package repository

import (
	"database/sql"
	"fmt"

	"github.com/stayfront/hms_backend/internal/domain"
)

type bookingGuestRepository struct {
	db *sql.DB
}

// NewBookingGuestRepository creates a new guest roster repository instance.
func NewBookingGuestRepository(db *sql.DB) domain.BookingGuestRepository {
	return &bookingGuestRepository{db: db}
}

func (r *bookingGuestRepository) ListByBooking(bookingID int) ([]domain.BookingGuest, error) {
	rows, err := r.db.Query(`
		SELECT id, booking_id, name, gender, age, phone, email, is_primary
		FROM booking_guests
		WHERE booking_id = $1
		ORDER BY is_primary DESC, id
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	var guests []domain.BookingGuest
	for rows.Next() {
		var g domain.BookingGuest
		if err := rows.Scan(&g.ID, &g.BookingID, &g.Name, &g.Gender, &g.Age, &g.Phone, &g.Email, &g.Primary); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *bookingGuestRepository) Create(guest *domain.BookingGuest) error {
	err := r.db.QueryRow(`
		INSERT INTO booking_guests (booking_id, name, gender, age, phone, email, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, guest.BookingID, guest.Name, guest.Gender, guest.Age, guest.Phone, guest.Email, guest.Primary).Scan(&guest.ID)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (r *bookingGuestRepository) Update(guest *domain.BookingGuest) error {
	result, err := r.db.Exec(`
		UPDATE booking_guests
		SET name = $2, gender = $3, age = $4, phone = $5, email = $6, is_primary = $7
		WHERE id = $1
	`, guest.ID, guest.Name, guest.Gender, guest.Age, guest.Phone, guest.Email, guest.Primary)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("guest with ID %d not found", guest.ID)
	}
	return nil
}

func (r *bookingGuestRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM booking_guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("guest with ID %d not found", id)
	}
	return nil
}

func (r *bookingGuestRepository) DeleteByBooking(bookingID int) error {
	if _, err := r.db.Exec(`DELETE FROM booking_guests WHERE booking_id = $1`, bookingID); err != nil {
		return fmt.Errorf("failed to delete booking guests: %w", err)
	}
	return nil
}
