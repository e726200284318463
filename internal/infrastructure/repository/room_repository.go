package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stayfront/hms_backend/internal/domain"
)

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new room repository instance.
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetAll() ([]domain.Room, error) {
	rows, err := r.db.Query(`
		SELECT id, number, type, price, status, min_occupancy, max_occupancy, COALESCE(photo_url, '')
		FROM rooms
		ORDER BY number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) GetByID(id int) (*domain.Room, error) {
	room := &domain.Room{}
	err := r.db.QueryRow(`
		SELECT id, number, type, price, status, min_occupancy, max_occupancy, COALESCE(photo_url, '')
		FROM rooms
		WHERE id = $1
	`, id).Scan(&room.ID, &room.Number, &room.Type, &room.Price, &room.Status, &room.MinOccupancy, &room.MaxOccupancy, &room.PhotoURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("room with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

// GetAvailable returns available rooms that fit partySize and have no
// booking overlapping the [checkIn, checkOut) window. Cancelled and
// checked-out bookings do not occupy rooms; excludeBookingID lets a booking
// ignore its own occupancy when changing rooms.
func (r *roomRepository) GetAvailable(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
	rows, err := r.db.Query(`
		SELECT rm.id, rm.number, rm.type, rm.price, rm.status, rm.min_occupancy, rm.max_occupancy, COALESCE(rm.photo_url, '')
		FROM rooms rm
		WHERE rm.status = $1
		  AND rm.min_occupancy <= $2
		  AND rm.max_occupancy >= $2
		  AND NOT EXISTS (
			SELECT 1
			FROM bookings b
			WHERE b.room_id = rm.id
			  AND b.id <> $5
			  AND b.status NOT IN ('cancelled', 'checkout')
			  AND b.check_in_date < $4
			  AND b.check_out_date > $3
		  )
		ORDER BY rm.number
	`, domain.RoomAvailable, partySize, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) Create(room *domain.Room) error {
	err := r.db.QueryRow(`
		INSERT INTO rooms (number, type, price, status, min_occupancy, max_occupancy)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, room.Number, room.Type, room.Price, room.Status, room.MinOccupancy, room.MaxOccupancy).Scan(&room.ID)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *roomRepository) Update(room *domain.Room) error {
	result, err := r.db.Exec(`
		UPDATE rooms
		SET number = $2, type = $3, price = $4, status = $5, min_occupancy = $6, max_occupancy = $7
		WHERE id = $1
	`, room.ID, room.Number, room.Type, room.Price, room.Status, room.MinOccupancy, room.MaxOccupancy)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return requireRoomRow(result, room.ID)
}

func (r *roomRepository) Delete(id int) error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM bookings WHERE room_id = $1`, id).Scan(&count); err != nil {
		return fmt.Errorf("failed to check room bookings: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("room %d has bookings and cannot be deleted", id)
	}

	result, err := r.db.Exec(`DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return requireRoomRow(result, id)
}

func (r *roomRepository) SetPhotoURL(id int, url string) error {
	result, err := r.db.Exec(`UPDATE rooms SET photo_url = $2 WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("failed to set room photo: %w", err)
	}
	return requireRoomRow(result, id)
}

func scanRooms(rows *sql.Rows) ([]domain.Room, error) {
	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Price, &room.Status, &room.MinOccupancy, &room.MaxOccupancy, &room.PhotoURL); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func requireRoomRow(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("room with ID %d not found", id)
	}
	return nil
}
