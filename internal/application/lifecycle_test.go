package application

import (
	"errors"
	"testing"

	"github.com/stayfront/hms_backend/internal/domain"
)

func booking(status domain.BookingStatus, confirmed bool) *domain.Booking {
	return &domain.Booking{ID: 1, Status: status, Confirmed: confirmed}
}

func TestCanConfirm(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		wantErr error
	}{
		{"pending unconfirmed", booking(domain.StatusPending, false), nil},
		{"active unconfirmed", booking(domain.StatusActive, false), nil},
		{"already confirmed", booking(domain.StatusActive, true), ErrAlreadyConfirmed},
		{"cancelled", booking(domain.StatusCancelled, false), ErrAlreadyCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanConfirm(tt.booking); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanConfirm() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanCheckIn(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		wantErr error
	}{
		{"confirmed active", booking(domain.StatusActive, true), nil},
		{"unconfirmed", booking(domain.StatusActive, false), ErrNotConfirmed},
		{"already in-house", booking(domain.StatusCheckIn, true), ErrNotArrived},
		{"checked out", booking(domain.StatusCheckout, true), ErrNotArrived},
		{"cancelled", booking(domain.StatusCancelled, true), ErrAlreadyCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanCheckIn(tt.booking); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanCheckIn() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanCheckOut(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		wantErr error
	}{
		{"in-house", booking(domain.StatusCheckIn, true), nil},
		{"unconfirmed", booking(domain.StatusCheckIn, false), ErrNotConfirmed},
		{"not arrived", booking(domain.StatusActive, true), ErrNotInHouse},
		{"already out", booking(domain.StatusCheckout, true), ErrNotInHouse},
		{"cancelled", booking(domain.StatusCancelled, true), ErrAlreadyCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanCheckOut(tt.booking); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanCheckOut() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		wantErr error
	}{
		{"pending", booking(domain.StatusPending, false), nil},
		{"active", booking(domain.StatusActive, true), nil},
		{"after check-in", booking(domain.StatusCheckIn, true), ErrCancelAfterCheckIn},
		{"checked out", booking(domain.StatusCheckout, true), ErrCancelCheckedOut},
		{"already cancelled", booking(domain.StatusCancelled, true), ErrAlreadyCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanCancel(tt.booking); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanCancel() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanEdit(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusActive, domain.StatusCheckIn} {
		if err := CanEdit(booking(status, true)); err != nil {
			t.Errorf("CanEdit(%s) = %v, want nil", status, err)
		}
	}
	for _, status := range []domain.BookingStatus{domain.StatusCheckout, domain.StatusCancelled} {
		if err := CanEdit(booking(status, true)); !errors.Is(err, ErrBookingClosed) {
			t.Errorf("CanEdit(%s) = %v, want ErrBookingClosed", status, err)
		}
	}
}

func TestCanAttachService(t *testing.T) {
	if err := CanAttachService(booking(domain.StatusCheckIn, true)); err != nil {
		t.Errorf("confirmed in-house: %v, want nil", err)
	}
	if err := CanAttachService(booking(domain.StatusPending, false)); !errors.Is(err, ErrNotConfirmed) {
		t.Errorf("unconfirmed: %v, want ErrNotConfirmed", err)
	}
	if err := CanAttachService(booking(domain.StatusCheckout, true)); !errors.Is(err, ErrBookingClosed) {
		t.Errorf("checked out: %v, want ErrBookingClosed", err)
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		want    []Action
	}{
		{"pending", booking(domain.StatusPending, false), []Action{ActionConfirm, ActionCancel, ActionDelete}},
		{"active confirmed", booking(domain.StatusActive, true), []Action{ActionCheckIn, ActionCancel, ActionDelete}},
		{"in-house", booking(domain.StatusCheckIn, true), []Action{ActionCheckout, ActionDelete}},
		{"checked out", booking(domain.StatusCheckout, true), []Action{ActionDelete}},
		{"cancelled", booking(domain.StatusCancelled, false), []Action{ActionDelete}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allowed(tt.booking)
			if len(got) != len(tt.want) {
				t.Fatalf("Allowed() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Allowed()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsGuardViolation(t *testing.T) {
	if !IsGuardViolation(ErrCancelAfterCheckIn) {
		t.Error("ErrCancelAfterCheckIn should be a guard violation")
	}
	if IsGuardViolation(errors.New("db down")) {
		t.Error("arbitrary errors are not guard violations")
	}
}
