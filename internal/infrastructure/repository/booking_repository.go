package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayfront/hms_backend/internal/domain"
)

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository instance.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `
	b.id,
	b.guest_name,
	b.phone,
	b.email,
	b.party_size,
	b.check_in_date,
	b.check_out_date,
	b.room_id,
	b.status,
	b.confirmed,
	b.room_cost,
	b.total_amount,
	b.paid_amount,
	b.due_amount,
	b.created_at,
	r.number,
	r.type,
	r.price,
	r.status,
	r.min_occupancy,
	r.max_occupancy
`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	room := domain.Room{}
	var rawStatus string
	err := row.Scan(
		&b.ID,
		&b.GuestName,
		&b.Phone,
		&b.Email,
		&b.PartySize,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.RoomID,
		&rawStatus,
		&b.Confirmed,
		&b.RoomCost,
		&b.TotalAmount,
		&b.PaidAmount,
		&b.DueAmount,
		&b.CreatedAt,
		&room.Number,
		&room.Type,
		&room.Price,
		&room.Status,
		&room.MinOccupancy,
		&room.MaxOccupancy,
	)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", b.ID, err)
	}
	b.Status = status
	room.ID = b.RoomID
	b.Room = &room
	return b, nil
}

// GetByID returns a booking with its room, guest roster and service lines.
func (r *bookingRepository) GetByID(id int) (*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		INNER JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	guests, err := r.bookingGuests(id)
	if err != nil {
		return nil, err
	}
	booking.Guests = guests

	lines, err := r.bookingServiceLines(id)
	if err != nil {
		return nil, err
	}
	booking.Services = lines

	return booking, nil
}

// List returns all bookings with their room joined, newest first.
func (r *bookingRepository) List() ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		INNER JOIN rooms r ON r.id = b.room_id
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// Create inserts a booking and sets its generated ID.
func (r *bookingRepository) Create(b *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			guest_name,
			phone,
			email,
			party_size,
			check_in_date,
			check_out_date,
			room_id,
			status,
			confirmed,
			room_cost,
			total_amount,
			paid_amount,
			due_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		b.GuestName,
		b.Phone,
		b.Email,
		b.PartySize,
		b.CheckInDate,
		b.CheckOutDate,
		b.RoomID,
		string(b.Status),
		b.Confirmed,
		b.RoomCost,
		b.TotalAmount,
		b.PaidAmount,
		b.DueAmount,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateGuestInfo updates the primary guest contact fields.
func (r *bookingRepository) UpdateGuestInfo(id int, name, phone, email string, partySize int) error {
	result, err := r.db.Exec(`
		UPDATE bookings
		SET guest_name = $2, phone = $3, email = $4, party_size = $5
		WHERE id = $1
	`, id, name, phone, email, partySize)
	if err != nil {
		return fmt.Errorf("failed to update guest info: %w", err)
	}
	return requireRow(result, id)
}

// UpdateStatus sets the lifecycle status.
func (r *bookingRepository) UpdateStatus(id int, status domain.BookingStatus) error {
	result, err := r.db.Exec(`UPDATE bookings SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return requireRow(result, id)
}

// Confirm sets the confirmation flag and moves the booking to status.
func (r *bookingRepository) Confirm(id int, status domain.BookingStatus) error {
	result, err := r.db.Exec(`
		UPDATE bookings SET confirmed = TRUE, status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}
	return requireRow(result, id)
}

// UpdateStay moves the check-out date and applies the signed billing delta
// to the room cost, then recomputes total and due in the same transaction.
func (r *bookingRepository) UpdateStay(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE bookings
		SET check_out_date = $2, room_cost = room_cost + $3
		WHERE id = $1
	`, id, newCheckOut, amountDelta)
	if err != nil {
		return fmt.Errorf("failed to update stay: %w", err)
	}

	if err := recalcBookingTotals(tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ChangeRoom swaps the assigned room and replaces the room cost component,
// then recomputes total and due in the same transaction.
func (r *bookingRepository) ChangeRoom(id int, newRoomID int, newRoomCost decimal.Decimal) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE bookings SET room_id = $2, room_cost = $3 WHERE id = $1
	`, id, newRoomID, newRoomCost)
	if err != nil {
		return fmt.Errorf("failed to change room: %w", err)
	}

	if err := recalcBookingTotals(tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a booking and its dependent rows.
func (r *bookingRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"payments", "booking_services", "booking_guests"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE booking_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete booking rows from %s: %w", table, err)
		}
	}
	if _, err := tx.Exec(`DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return tx.Commit()
}

// CompleteExpired marks in-house bookings past their check-out date as
// checked out.
func (r *bookingRepository) CompleteExpired(now time.Time) (int, error) {
	result, err := r.db.Exec(`
		UPDATE bookings
		SET status = $1
		WHERE status = $2 AND check_out_date < $3
	`, string(domain.StatusCheckout), string(domain.StatusCheckIn), now)
	if err != nil {
		return 0, fmt.Errorf("failed to complete expired bookings: %w", err)
	}
	n, err := result.RowsAffected()
	return int(n), err
}

func (r *bookingRepository) bookingGuests(bookingID int) ([]domain.BookingGuest, error) {
	rows, err := r.db.Query(`
		SELECT id, booking_id, name, gender, age, phone, email, is_primary
		FROM booking_guests
		WHERE booking_id = $1
		ORDER BY is_primary DESC, id
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking guests: %w", err)
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

func (r *bookingRepository) bookingServiceLines(bookingID int) ([]domain.ServiceLine, error) {
	rows, err := r.db.Query(`
		SELECT bs.id, bs.booking_id, bs.service_id, s.name, bs.quantity, bs.unit_price, bs.total_price, bs.paid_amount, bs.created_at
		FROM booking_services bs
		INNER JOIN hotel_services s ON s.id = bs.service_id
		WHERE bs.booking_id = $1
		ORDER BY bs.created_at, bs.id
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking services: %w", err)
	}
	defer rows.Close()

	var lines []domain.ServiceLine
	for rows.Next() {
		var l domain.ServiceLine
		if err := rows.Scan(&l.ID, &l.BookingID, &l.ServiceID, &l.Name, &l.Quantity, &l.UnitPrice, &l.TotalPrice, &l.PaidAmount, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// recalcBookingTotals rewrites total_amount and due_amount from the room
// cost, the service lines and the paid amount. Keeps the invariants
// total = room_cost + services and due = total - paid.
func recalcBookingTotals(tx *sql.Tx, bookingID int) error {
	_, err := tx.Exec(`
		UPDATE bookings
		SET total_amount = room_cost + COALESCE(
				(SELECT SUM(total_price) FROM booking_services WHERE booking_id = bookings.id), 0),
		    due_amount = room_cost + COALESCE(
				(SELECT SUM(total_price) FROM booking_services WHERE booking_id = bookings.id), 0) - paid_amount
		WHERE id = $1
	`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to recompute booking totals: %w", err)
	}
	return nil
}

func requireRow(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("booking with ID %d not found", id)
	}
	return nil
}
