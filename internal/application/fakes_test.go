package application

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/domain"
)

// In-memory fakes for the repository interfaces. Each method delegates to an
// optional func field so tests can override just what they need.

type fakeBookingRepo struct {
	getByIDFunc         func(id int) (*domain.Booking, error)
	listFunc            func() ([]domain.Booking, error)
	createFunc          func(b *domain.Booking) error
	updateGuestInfoFunc func(id int, name, phone, email string, partySize int) error
	updateStatusFunc    func(id int, status domain.BookingStatus) error
	confirmFunc         func(id int, status domain.BookingStatus) error
	updateStayFunc      func(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error
	changeRoomFunc      func(id, newRoomID int, newRoomCost decimal.Decimal) error
	deleteFunc          func(id int) error
	completeFunc        func(now time.Time) (int, error)
}

func (f *fakeBookingRepo) GetByID(id int) (*domain.Booking, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(id)
	}
	return nil, fmt.Errorf("booking with ID %d not found", id)
}

func (f *fakeBookingRepo) List() ([]domain.Booking, error) {
	if f.listFunc != nil {
		return f.listFunc()
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(b *domain.Booking) error {
	if f.createFunc != nil {
		return f.createFunc(b)
	}
	b.ID = 1
	return nil
}

func (f *fakeBookingRepo) UpdateGuestInfo(id int, name, phone, email string, partySize int) error {
	if f.updateGuestInfoFunc != nil {
		return f.updateGuestInfoFunc(id, name, phone, email, partySize)
	}
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id int, status domain.BookingStatus) error {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(id, status)
	}
	return nil
}

func (f *fakeBookingRepo) Confirm(id int, status domain.BookingStatus) error {
	if f.confirmFunc != nil {
		return f.confirmFunc(id, status)
	}
	return nil
}

func (f *fakeBookingRepo) UpdateStay(id int, newCheckOut time.Time, amountDelta decimal.Decimal) error {
	if f.updateStayFunc != nil {
		return f.updateStayFunc(id, newCheckOut, amountDelta)
	}
	return nil
}

func (f *fakeBookingRepo) ChangeRoom(id, newRoomID int, newRoomCost decimal.Decimal) error {
	if f.changeRoomFunc != nil {
		return f.changeRoomFunc(id, newRoomID, newRoomCost)
	}
	return nil
}

func (f *fakeBookingRepo) Delete(id int) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}

func (f *fakeBookingRepo) CompleteExpired(now time.Time) (int, error) {
	if f.completeFunc != nil {
		return f.completeFunc(now)
	}
	return 0, nil
}

type fakeRoomRepo struct {
	getAllFunc       func() ([]domain.Room, error)
	getByIDFunc      func(id int) (*domain.Room, error)
	getAvailableFunc func(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error)
}

func (f *fakeRoomRepo) GetAll() ([]domain.Room, error) {
	if f.getAllFunc != nil {
		return f.getAllFunc()
	}
	return nil, nil
}

func (f *fakeRoomRepo) GetByID(id int) (*domain.Room, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(id)
	}
	return nil, fmt.Errorf("room with ID %d not found", id)
}

func (f *fakeRoomRepo) GetAvailable(checkIn, checkOut time.Time, partySize, excludeBookingID int) ([]domain.Room, error) {
	if f.getAvailableFunc != nil {
		return f.getAvailableFunc(checkIn, checkOut, partySize, excludeBookingID)
	}
	return nil, nil
}

func (f *fakeRoomRepo) Create(room *domain.Room) error       { return nil }
func (f *fakeRoomRepo) Update(room *domain.Room) error       { return nil }
func (f *fakeRoomRepo) Delete(id int) error                  { return nil }
func (f *fakeRoomRepo) SetPhotoURL(id int, url string) error { return nil }

type fakeGuestRepo struct{}

func (f *fakeGuestRepo) ListByBooking(bookingID int) ([]domain.BookingGuest, error) { return nil, nil }
func (f *fakeGuestRepo) Create(guest *domain.BookingGuest) error                    { return nil }
func (f *fakeGuestRepo) Update(guest *domain.BookingGuest) error                    { return nil }
func (f *fakeGuestRepo) Delete(id int) error                                        { return nil }
func (f *fakeGuestRepo) DeleteByBooking(bookingID int) error                        { return nil }

type fakePaymentRepo struct {
	createFunc func(p *domain.Payment) error
	listFunc   func(bookingID int) ([]domain.Payment, error)
}

func (f *fakePaymentRepo) Create(p *domain.Payment) error {
	if f.createFunc != nil {
		return f.createFunc(p)
	}
	p.ID = 1
	return nil
}

func (f *fakePaymentRepo) ListByBooking(bookingID int) ([]domain.Payment, error) {
	if f.listFunc != nil {
		return f.listFunc(bookingID)
	}
	return nil, nil
}

type fakeCatalogRepo struct {
	getByIDFunc func(id int) (*domain.HotelService, error)
}

func (f *fakeCatalogRepo) GetAll() ([]domain.HotelService, error) { return nil, nil }

func (f *fakeCatalogRepo) GetByID(id int) (*domain.HotelService, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(id)
	}
	return nil, fmt.Errorf("service with ID %d not found", id)
}

func (f *fakeCatalogRepo) Create(service *domain.HotelService) error { return nil }
func (f *fakeCatalogRepo) Update(service *domain.HotelService) error { return nil }
func (f *fakeCatalogRepo) Delete(id int) error                       { return nil }

type fakeLineRepo struct {
	getByIDFunc func(id int) (*domain.ServiceLine, error)
	createFunc  func(line *domain.ServiceLine) error
	updateFunc  func(line *domain.ServiceLine) error
	deleteFunc  func(id int) error
}

func (f *fakeLineRepo) ListByBooking(bookingID int) ([]domain.ServiceLine, error) { return nil, nil }

func (f *fakeLineRepo) GetByID(id int) (*domain.ServiceLine, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(id)
	}
	return nil, fmt.Errorf("service line with ID %d not found", id)
}

func (f *fakeLineRepo) Create(line *domain.ServiceLine) error {
	if f.createFunc != nil {
		return f.createFunc(line)
	}
	line.ID = 1
	return nil
}

func (f *fakeLineRepo) Update(line *domain.ServiceLine) error {
	if f.updateFunc != nil {
		return f.updateFunc(line)
	}
	return nil
}

func (f *fakeLineRepo) Delete(id int) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}
