package application

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayfront/hms_backend/internal/domain"
)

// RoomService exposes the room inventory.
type RoomService struct {
	roomRepo domain.RoomRepository
}

// NewRoomService creates a new room service instance.
func NewRoomService(roomRepo domain.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// GetAllRooms returns all rooms in the system.
func (s *RoomService) GetAllRooms() ([]domain.Room, error) {
	return s.roomRepo.GetAll()
}

// GetRoom returns a single room.
func (s *RoomService) GetRoom(id int) (*domain.Room, error) {
	return s.roomRepo.GetByID(id)
}

// GetAvailableRooms returns rooms free for the whole window that fit the
// party size. excludeBookingID may be 0.
func (s *RoomService) GetAvailableRooms(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}
	return s.roomRepo.GetAvailable(checkIn, checkOut, partySize, excludeBookingID)
}

// CreateRoom validates and stores a new room.
func (s *RoomService) CreateRoom(room *domain.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	return s.roomRepo.Create(room)
}

// UpdateRoom validates and rewrites a room.
func (s *RoomService) UpdateRoom(room *domain.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	return s.roomRepo.Update(room)
}

// DeleteRoom removes a room from the inventory.
func (s *RoomService) DeleteRoom(id int) error {
	return s.roomRepo.Delete(id)
}

// SetRoomPhoto stores the uploaded photo URL on the room.
func (s *RoomService) SetRoomPhoto(id int, url string) error {
	if _, err := s.roomRepo.GetByID(id); err != nil {
		return err
	}
	return s.roomRepo.SetPhotoURL(id, url)
}

func validateRoom(room *domain.Room) error {
	if room.Number == "" {
		return fmt.Errorf("room number is required")
	}
	if room.Type == "" {
		return fmt.Errorf("room type is required")
	}
	if room.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("nightly price must be greater than 0")
	}
	if room.MinOccupancy < 1 || room.MaxOccupancy < room.MinOccupancy {
		return fmt.Errorf("occupancy range is invalid")
	}
	if room.Status != "" && room.Status != domain.RoomAvailable && room.Status != domain.RoomUnavailable {
		return fmt.Errorf("room status must be %q or %q", domain.RoomAvailable, domain.RoomUnavailable)
	}
	return nil
}
