package application

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayfront/hms_backend/internal/domain"
	"github.com/stayfront/hms_backend/internal/email"
)

// BookingService executes guarded lifecycle transitions and billing
// mutations. Every mutation follows fetch → guard → mutate → refetch: the
// returned booking is always re-read from storage, never patched locally.
type BookingService struct {
	bookingRepo domain.BookingRepository
	roomRepo    domain.RoomRepository
	guestRepo   domain.BookingGuestRepository
	emailClient *email.Client
	validator   *Validator
}

// NewBookingService creates a new booking service instance.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	roomRepo domain.RoomRepository,
	guestRepo domain.BookingGuestRepository,
	emailClient *email.Client,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		emailClient: emailClient,
		validator:   &Validator{},
	}
}

// GetBooking returns a booking with its room, guests and service lines.
func (s *BookingService) GetBooking(id int) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// ListBookings returns all bookings.
func (s *BookingService) ListBookings() ([]domain.Booking, error) {
	return s.bookingRepo.List()
}

// CreateBooking validates the stay window and room, prices the stay and
// stores the booking in pending status.
func (s *BookingService) CreateBooking(b *domain.Booking) (*domain.Booking, error) {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}
	if b.PartySize < 1 {
		return nil, fmt.Errorf("party size must be at least 1")
	}
	if err := s.validator.ValidateEmail(b.Email); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePhone(b.Phone); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(b.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room %d: %w", b.RoomID, err)
	}
	if b.PartySize < room.MinOccupancy || b.PartySize > room.MaxOccupancy {
		return nil, fmt.Errorf("room %s holds %d to %d guests", room.Number, room.MinOccupancy, room.MaxOccupancy)
	}

	available, err := s.roomAvailable(b.RoomID, b.CheckInDate, b.CheckOutDate, b.PartySize, 0)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("room %s is not available for the selected dates", room.Number)
	}

	nights := StayNights(b.CheckInDate, b.CheckOutDate)
	b.RoomCost = room.Price.Mul(decimal.NewFromInt(int64(nights)))
	b.TotalAmount = b.RoomCost
	b.PaidAmount = decimal.Zero
	b.DueAmount = b.TotalAmount
	b.Status = domain.StatusPending
	b.Confirmed = false

	if err := s.bookingRepo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return s.bookingRepo.GetByID(b.ID)
}

// UpdateGuestInfo updates the primary guest contact fields.
func (s *BookingService) UpdateGuestInfo(id int, name, phone, emailAddr string, partySize int) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := CanEdit(b); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateName(name, "guest name"); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEmail(emailAddr); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePhone(phone); err != nil {
		return nil, err
	}
	if partySize < 1 {
		return nil, fmt.Errorf("party size must be at least 1")
	}

	if err := s.bookingRepo.UpdateGuestInfo(id, name, phone, emailAddr, partySize); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(id)
}

// Confirm sets the confirmation flag and sends the confirmation email.
// Email failure is logged but does not undo the committed transition.
func (s *BookingService) Confirm(id int) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := CanConfirm(b); err != nil {
		return nil, err
	}

	newStatus := b.Status
	if newStatus == domain.StatusPending {
		newStatus = domain.StatusActive
	}
	if err := s.bookingRepo.Confirm(id, newStatus); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	confirmed, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.sendConfirmationEmail(confirmed)
	return confirmed, nil
}

// CheckIn marks the guest as arrived.
func (s *BookingService) CheckIn(id int) (*domain.Booking, error) {
	return s.transition(id, domain.StatusCheckIn, CanCheckIn, "failed to check in booking")
}

// Checkout closes the stay and sends the receipt email.
func (s *BookingService) Checkout(id int) (*domain.Booking, error) {
	b, err := s.transition(id, domain.StatusCheckout, CanCheckOut, "failed to check out booking")
	if err != nil {
		return nil, err
	}
	s.sendReceiptEmail(b)
	return b, nil
}

// Cancel cancels a booking that has not reached check-in.
func (s *BookingService) Cancel(id int) (*domain.Booking, error) {
	return s.transition(id, domain.StatusCancelled, CanCancel, "failed to cancel booking")
}

// Delete removes a booking. Always permitted, irreversible.
func (s *BookingService) Delete(id int) error {
	if _, err := s.bookingRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.bookingRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (s *BookingService) transition(id int, to domain.BookingStatus, guard func(*domain.Booking) error, failMsg string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := guard(b); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdateStatus(id, to); err != nil {
		return nil, fmt.Errorf("%s: %w", failMsg, err)
	}
	return s.bookingRepo.GetByID(id)
}

// StayUpdateResult is the outcome of moving a booking's check-out date.
type StayUpdateResult struct {
	Booking    *domain.Booking `json:"booking"`
	Adjustment StayAdjustment  `json:"adjustment"`
	Message    string          `json:"message"`
}

// UpdateStay moves the check-out date, billing the signed day delta at the
// room's nightly rate. A zero delta issues no mutation.
func (s *BookingService) UpdateStay(id int, newCheckOut time.Time) (*StayUpdateResult, error) {
	b, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := CanEdit(b); err != nil {
		return nil, err
	}
	if b.Room == nil {
		return nil, fmt.Errorf("booking %d has no room assigned", id)
	}

	adj, err := ComputeStayAdjustment(b.CheckInDate, b.CheckOutDate, newCheckOut, b.Room.Price)
	if err != nil {
		return nil, err
	}

	if adj.DayDelta == 0 {
		return &StayUpdateResult{Booking: b, Adjustment: adj, Message: "Check-out date unchanged"}, nil
	}

	if err := s.bookingRepo.UpdateStay(id, newCheckOut, adj.AmountDelta); err != nil {
		return nil, fmt.Errorf("failed to update stay dates: %w", err)
	}
	updated, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	var msg string
	if adj.DayDelta > 0 {
		msg = fmt.Sprintf("Stay extended by %d days. Additional charge: ₹%s", adj.DayDelta, adj.AmountDelta.StringFixed(2))
	} else {
		msg = fmt.Sprintf("Stay reduced by %d days. Refund: ₹%s", -adj.DayDelta, adj.AmountDelta.Neg().StringFixed(2))
	}
	return &StayUpdateResult{Booking: updated, Adjustment: adj, Message: msg}, nil
}

// RoomChangeResult is the outcome of swapping the assigned room.
type RoomChangeResult struct {
	Booking *domain.Booking `json:"booking"`
	Quote   RoomChangeQuote `json:"quote"`
}

// ChangeRoom swaps the assigned room, splitting the stay's room cost at the
// changeAfterDays boundary when the stay spans more than one night. The new
// room must be available for the full window, ignoring this booking's own
// occupancy.
func (s *BookingService) ChangeRoom(id, newRoomID int, changeAfterDays *int) (*RoomChangeResult, error) {
	b, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := CanEdit(b); err != nil {
		return nil, err
	}
	if b.Room == nil {
		return nil, fmt.Errorf("booking %d has no room assigned", id)
	}
	if newRoomID == b.RoomID {
		return nil, fmt.Errorf("booking is already in that room")
	}

	newRoom, err := s.roomRepo.GetByID(newRoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room %d: %w", newRoomID, err)
	}

	available, err := s.roomAvailable(newRoomID, b.CheckInDate, b.CheckOutDate, b.PartySize, b.ID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("room %s is not available for the stay dates", newRoom.Number)
	}

	quote, err := ComputeRoomChange(b.CheckInDate, b.CheckOutDate, b.Room.Price, newRoom.Price, changeAfterDays)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.ChangeRoom(id, newRoomID, quote.NewRoomCost); err != nil {
		return nil, fmt.Errorf("failed to change room: %w", err)
	}
	updated, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &RoomChangeResult{Booking: updated, Quote: quote}, nil
}

// AvailableRooms lists rooms free for the booking's window and party size,
// excluding the booking's current room.
func (s *BookingService) AvailableRooms(id int) ([]domain.Room, error) {
	b, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	rooms, err := s.roomRepo.GetAvailable(b.CheckInDate, b.CheckOutDate, b.PartySize, b.ID)
	if err != nil {
		return nil, err
	}
	out := rooms[:0]
	for _, r := range rooms {
		if r.ID != b.RoomID {
			out = append(out, r)
		}
	}
	return out, nil
}

// CompleteExpired marks in-house bookings past their check-out date as
// checked out. Used by the daily scheduler.
func (s *BookingService) CompleteExpired(now time.Time) (int, error) {
	return s.bookingRepo.CompleteExpired(now)
}

func (s *BookingService) roomAvailable(roomID int, checkIn, checkOut time.Time, partySize, excludeBookingID int) (bool, error) {
	rooms, err := s.roomRepo.GetAvailable(checkIn, checkOut, partySize, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}
	for _, r := range rooms {
		if r.ID == roomID {
			return true, nil
		}
	}
	return false, nil
}

func (s *BookingService) sendConfirmationEmail(b *domain.Booking) {
	if s.emailClient == nil || b.Email == "" {
		return
	}
	info := email.BookingInfo{
		ID:           b.ID,
		GuestName:    b.GuestName,
		GuestEmail:   b.Email,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Nights:       StayNights(b.CheckInDate, b.CheckOutDate),
		Total:        b.TotalAmount,
		Paid:         b.PaidAmount,
		Due:          b.DueAmount,
	}
	if b.Room != nil {
		info.RoomNumber = b.Room.Number
		info.RoomType = b.Room.Type
	}
	if err := s.emailClient.SendBookingConfirmation(info); err != nil {
		log.Printf("Failed to send confirmation email for booking %d: %v", b.ID, err)
	}
}

func (s *BookingService) sendReceiptEmail(b *domain.Booking) {
	if s.emailClient == nil || b.Email == "" {
		return
	}
	info := email.BookingInfo{
		ID:           b.ID,
		GuestName:    b.GuestName,
		GuestEmail:   b.Email,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Nights:       StayNights(b.CheckInDate, b.CheckOutDate),
		Total:        b.TotalAmount,
		Paid:         b.PaidAmount,
		Due:          b.DueAmount,
		Services:     make([]email.ServiceLineInfo, 0, len(b.Services)),
	}
	if b.Room != nil {
		info.RoomNumber = b.Room.Number
		info.RoomType = b.Room.Type
	}
	for _, line := range b.Services {
		info.Services = append(info.Services, email.ServiceLineInfo{
			Name:     line.Name,
			Quantity: line.Quantity,
			Total:    line.TotalPrice,
		})
	}
	if err := s.emailClient.SendCheckoutReceipt(info); err != nil {
		log.Printf("Failed to send receipt email for booking %d: %v", b.ID, err)
	}
}
