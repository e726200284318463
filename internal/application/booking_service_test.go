package application

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/domain"
)

func testRoom() *domain.Room {
	return &domain.Room{
		ID:           1,
		Number:       "101",
		Type:         "Deluxe",
		Price:        decimal.NewFromInt(1000),
		Status:       domain.RoomAvailable,
		MinOccupancy: 1,
		MaxOccupancy: 3,
	}
}

func testBooking(status domain.BookingStatus, confirmed bool) *domain.Booking {
	room := testRoom()
	return &domain.Booking{
		ID:           1,
		GuestName:    "Asha Verma",
		Phone:        "9876543210",
		Email:        "asha@example.com",
		PartySize:    2,
		CheckInDate:  date("2024-01-10"),
		CheckOutDate: date("2024-01-12"),
		RoomID:       room.ID,
		Room:         room,
		Status:       status,
		Confirmed:    confirmed,
		RoomCost:     decimal.NewFromInt(2000),
		TotalAmount:  decimal.NewFromInt(2000),
		PaidAmount:   decimal.Zero,
		DueAmount:    decimal.NewFromInt(2000),
	}
}

func newTestBookingService(bookingRepo *fakeBookingRepo, roomRepo *fakeRoomRepo) *BookingService {
	return NewBookingService(bookingRepo, roomRepo, &fakeGuestRepo{}, nil)
}

func TestCreateBooking(t *testing.T) {
	var created *domain.Booking
	bookingRepo := &fakeBookingRepo{
		createFunc: func(b *domain.Booking) error {
			b.ID = 7
			created = b
			return nil
		},
		getByIDFunc: func(id int) (*domain.Booking, error) {
			b := testBooking(domain.StatusPending, false)
			b.ID = id
			return b, nil
		},
	}
	roomRepo := &fakeRoomRepo{
		getByIDFunc: func(id int) (*domain.Room, error) { return testRoom(), nil },
		getAvailableFunc: func(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
			return []domain.Room{*testRoom()}, nil
		},
	}
	service := newTestBookingService(bookingRepo, roomRepo)

	b, err := service.CreateBooking(&domain.Booking{
		GuestName:    "Asha Verma",
		Phone:        "9876543210",
		Email:        "asha@example.com",
		PartySize:    2,
		RoomID:       1,
		CheckInDate:  date("2024-01-10"),
		CheckOutDate: date("2024-01-12"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != 7 {
		t.Errorf("ID = %d, want 7", b.ID)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("stored status = %s, want pending", created.Status)
	}
	if !created.RoomCost.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("RoomCost = %s, want 2000 (2 nights x 1000)", created.RoomCost)
	}
	if !created.DueAmount.Equal(created.TotalAmount) {
		t.Errorf("DueAmount = %s, want TotalAmount %s", created.DueAmount, created.TotalAmount)
	}
}

func TestCreateBooking_InvalidWindow(t *testing.T) {
	service := newTestBookingService(&fakeBookingRepo{}, &fakeRoomRepo{})
	_, err := service.CreateBooking(&domain.Booking{
		GuestName:    "Asha Verma",
		Phone:        "9876543210",
		Email:        "asha@example.com",
		PartySize:    1,
		RoomID:       1,
		CheckInDate:  date("2024-01-12"),
		CheckOutDate: date("2024-01-10"),
	})
	if err == nil || !strings.Contains(err.Error(), "check-out date must be after") {
		t.Errorf("err = %v, want window rejection", err)
	}
}

func TestCreateBooking_RoomNotAvailable(t *testing.T) {
	roomRepo := &fakeRoomRepo{
		getByIDFunc: func(id int) (*domain.Room, error) { return testRoom(), nil },
		getAvailableFunc: func(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
			return nil, nil
		},
	}
	service := newTestBookingService(&fakeBookingRepo{}, roomRepo)
	_, err := service.CreateBooking(&domain.Booking{
		GuestName:    "Asha Verma",
		Phone:        "9876543210",
		Email:        "asha@example.com",
		PartySize:    2,
		RoomID:       1,
		CheckInDate:  date("2024-01-10"),
		CheckOutDate: date("2024-01-12"),
	})
	if err == nil || !strings.Contains(err.Error(), "not available") {
		t.Errorf("err = %v, want availability rejection", err)
	}
}

func TestConfirm_MovesPendingToActive(t *testing.T) {
	state := testBooking(domain.StatusPending, false)
	var confirmedStatus domain.BookingStatus
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) { return state, nil },
		confirmFunc: func(id int, status domain.BookingStatus) error {
			confirmedStatus = status
			state.Confirmed = true
			state.Status = status
			return nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})

	b, err := service.Confirm(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmedStatus != domain.StatusActive {
		t.Errorf("confirmed into status %s, want active", confirmedStatus)
	}
	if !b.Confirmed {
		t.Error("returned booking is not confirmed")
	}
}

func TestConfirm_AlreadyConfirmed(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) {
			return testBooking(domain.StatusActive, true), nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})
	if _, err := service.Confirm(1); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Errorf("err = %v, want ErrAlreadyConfirmed", err)
	}
}

func TestCancel_BlockedAfterCheckIn(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) {
			return testBooking(domain.StatusCheckIn, true), nil
		},
		updateStatusFunc: func(id int, status domain.BookingStatus) error {
			t.Fatal("mutation issued despite guard rejection")
			return nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})
	if _, err := service.Cancel(1); !errors.Is(err, ErrCancelAfterCheckIn) {
		t.Errorf("err = %v, want ErrCancelAfterCheckIn", err)
	}
}

func TestUpdateStay_Extend(t *testing.T) {
	state := testBooking(domain.StatusActive, true)
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) { return state, nil },
		updateStayFunc: func(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error {
			if !amountDelta.Equal(decimal.NewFromInt(2000)) {
				t.Errorf("amountDelta = %s, want 2000", amountDelta)
			}
			state.CheckOutDate = newCheckOut
			state.RoomCost = state.RoomCost.Add(amountDelta)
			state.TotalAmount = state.RoomCost
			state.DueAmount = state.TotalAmount.Sub(state.PaidAmount)
			return nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})

	result, err := service.UpdateStay(1, date("2024-01-14"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Adjustment.DayDelta != 2 {
		t.Errorf("DayDelta = %d, want 2", result.Adjustment.DayDelta)
	}
	want := "Stay extended by 2 days. Additional charge: ₹2000.00"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
	if !result.Booking.TotalAmount.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("TotalAmount = %s, want 4000", result.Booking.TotalAmount)
	}
}

func TestUpdateStay_Reduce(t *testing.T) {
	state := testBooking(domain.StatusActive, true)
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) { return state, nil },
		updateStayFunc: func(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error {
			if !amountDelta.Equal(decimal.NewFromInt(-1000)) {
				t.Errorf("amountDelta = %s, want -1000", amountDelta)
			}
			state.CheckOutDate = newCheckOut
			return nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})

	result, err := service.UpdateStay(1, date("2024-01-11"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Stay reduced by 1 days. Refund: ₹1000.00"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestUpdateStay_NoChange(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) {
			return testBooking(domain.StatusActive, true), nil
		},
		updateStayFunc: func(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error {
			t.Fatal("mutation issued for a zero day delta")
			return nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})

	result, err := service.UpdateStay(1, date("2024-01-12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Check-out date unchanged" {
		t.Errorf("Message = %q, want unchanged notice", result.Message)
	}
}

func TestUpdateStay_ClosedBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) {
			return testBooking(domain.StatusCheckout, true), nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})
	if _, err := service.UpdateStay(1, date("2024-01-14")); !errors.Is(err, ErrBookingClosed) {
		t.Errorf("err = %v, want ErrBookingClosed", err)
	}
}

func TestChangeRoom_Split(t *testing.T) {
	state := testBooking(domain.StatusActive, true)
	state.CheckOutDate = date("2024-01-15") // 5 nights
	state.Room.Price = decimal.NewFromInt(800)

	newRoom := &domain.Room{
		ID:           2,
		Number:       "201",
		Type:         "Suite",
		Price:        decimal.NewFromInt(1200),
		Status:       domain.RoomAvailable,
		MinOccupancy: 1,
		MaxOccupancy: 4,
	}

	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) { return state, nil },
		changeRoomFunc: func(id, newRoomID int, newRoomCost decimal.Decimal) error {
			if !newRoomCost.Equal(decimal.NewFromInt(5200)) {
				t.Errorf("newRoomCost = %s, want 5200", newRoomCost)
			}
			state.RoomID = newRoomID
			state.Room = newRoom
			return nil
		},
	}
	roomRepo := &fakeRoomRepo{
		getByIDFunc: func(id int) (*domain.Room, error) { return newRoom, nil },
		getAvailableFunc: func(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
			if excludeBookingID != state.ID {
				t.Errorf("excludeBookingID = %d, want %d", excludeBookingID, state.ID)
			}
			return []domain.Room{*newRoom}, nil
		},
	}
	service := newTestBookingService(bookingRepo, roomRepo)

	k := 2
	result, err := service.ChangeRoom(1, 2, &k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Quote.NewRoomCost.Equal(decimal.NewFromInt(5200)) {
		t.Errorf("quote NewRoomCost = %s, want 5200", result.Quote.NewRoomCost)
	}
	if result.Booking.RoomID != 2 {
		t.Errorf("RoomID = %d, want 2", result.Booking.RoomID)
	}
}

func TestChangeRoom_SameRoom(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) {
			return testBooking(domain.StatusActive, true), nil
		},
	}
	service := newTestBookingService(bookingRepo, &fakeRoomRepo{})
	k := 0
	if _, err := service.ChangeRoom(1, 1, &k); err == nil || !strings.Contains(err.Error(), "already in that room") {
		t.Errorf("err = %v, want same-room rejection", err)
	}
}

func TestAvailableRooms_ExcludesCurrentRoom(t *testing.T) {
	current := testRoom()
	other := &domain.Room{ID: 2, Number: "201", Status: domain.RoomAvailable, MinOccupancy: 1, MaxOccupancy: 4}
	bookingRepo := &fakeBookingRepo{
		getByIDFunc: func(id int) (*domain.Booking, error) {
			return testBooking(domain.StatusActive, true), nil
		},
	}
	roomRepo := &fakeRoomRepo{
		getAvailableFunc: func(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
			return []domain.Room{*current, *other}, nil
		},
	}
	service := newTestBookingService(bookingRepo, roomRepo)

	rooms, err := service.AvailableRooms(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != 2 {
		t.Errorf("rooms = %v, want only room 2", rooms)
	}
}
