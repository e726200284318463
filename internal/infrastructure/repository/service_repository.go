package repository

import (
	"database/sql"
	"fmt"

	"github.com/stayfront/hms_backend/internal/domain"
)

type hotelServiceRepository struct {
	db *sql.DB
}

// NewHotelServiceRepository creates a new catalog repository instance.
func NewHotelServiceRepository(db *sql.DB) domain.HotelServiceRepository {
	return &hotelServiceRepository{db: db}
}

func (r *hotelServiceRepository) GetAll() ([]domain.HotelService, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description, price, active
		FROM hotel_services
		WHERE active = TRUE
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	defer rows.Close()

	var services []domain.HotelService
	for rows.Next() {
		var s domain.HotelService
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *hotelServiceRepository) GetByID(id int) (*domain.HotelService, error) {
	s := &domain.HotelService{}
	err := r.db.QueryRow(`
		SELECT id, name, description, price, active FROM hotel_services WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("service with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return s, nil
}

func (r *hotelServiceRepository) Create(service *domain.HotelService) error {
	err := r.db.QueryRow(`
		INSERT INTO hotel_services (name, description, price, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, service.Name, service.Description, service.Price, service.Active).Scan(&service.ID)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *hotelServiceRepository) Update(service *domain.HotelService) error {
	_, err := r.db.Exec(`
		UPDATE hotel_services SET name = $2, description = $3, price = $4, active = $5 WHERE id = $1
	`, service.ID, service.Name, service.Description, service.Price, service.Active)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// Delete performs a logical delete (active = FALSE).
func (r *hotelServiceRepository) Delete(id int) error {
	_, err := r.db.Exec(`UPDATE hotel_services SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

type serviceLineRepository struct {
	db *sql.DB
}

// NewServiceLineRepository creates a new service line repository instance.
func NewServiceLineRepository(db *sql.DB) domain.ServiceLineRepository {
	return &serviceLineRepository{db: db}
}

const serviceLineColumns = `
	bs.id, bs.booking_id, bs.service_id, s.name, bs.quantity, bs.unit_price, bs.total_price, bs.paid_amount, bs.created_at
`

func (r *serviceLineRepository) ListByBooking(bookingID int) ([]domain.ServiceLine, error) {
	rows, err := r.db.Query(`
		SELECT `+serviceLineColumns+`
		FROM booking_services bs
		INNER JOIN hotel_services s ON s.id = bs.service_id
		WHERE bs.booking_id = $1
		ORDER BY bs.created_at, bs.id
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service lines: %w", err)
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

func (r *serviceLineRepository) GetByID(id int) (*domain.ServiceLine, error) {
	l := &domain.ServiceLine{}
	err := r.db.QueryRow(`
		SELECT `+serviceLineColumns+`
		FROM booking_services bs
		INNER JOIN hotel_services s ON s.id = bs.service_id
		WHERE bs.id = $1
	`, id).Scan(&l.ID, &l.BookingID, &l.ServiceID, &l.Name, &l.Quantity, &l.UnitPrice, &l.TotalPrice, &l.PaidAmount, &l.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("service line with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get service line: %w", err)
	}
	return l, nil
}

// Create inserts a line and recomputes the owning booking's totals in the
// same transaction.
func (r *serviceLineRepository) Create(line *domain.ServiceLine) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO booking_services (booking_id, service_id, quantity, unit_price, total_price, paid_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, line.BookingID, line.ServiceID, line.Quantity, line.UnitPrice, line.TotalPrice, line.PaidAmount).Scan(&line.ID, &line.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service line: %w", err)
	}

	if err := recalcBookingTotals(tx, line.BookingID); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites quantity, total and paid amount of a line and recomputes
// the owning booking's totals in the same transaction.
func (r *serviceLineRepository) Update(line *domain.ServiceLine) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE booking_services
		SET quantity = $2, total_price = $3, paid_amount = $4
		WHERE id = $1
	`, line.ID, line.Quantity, line.TotalPrice, line.PaidAmount)
	if err != nil {
		return fmt.Errorf("failed to update service line: %w", err)
	}

	if err := recalcBookingTotals(tx, line.BookingID); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a line and recomputes the owning booking's totals in the
// same transaction.
func (r *serviceLineRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var bookingID int
	err = tx.QueryRow(`DELETE FROM booking_services WHERE id = $1 RETURNING booking_id`, id).Scan(&bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("service line with ID %d not found", id)
		}
		return fmt.Errorf("failed to delete service line: %w", err)
	}

	if err := recalcBookingTotals(tx, bookingID); err != nil {
		return err
	}
	return tx.Commit()
}
