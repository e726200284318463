package scheduler

import (
	"log"
	"time"

	"github.com/stayfront/hms_backend/internal/domain"
)

type BookingScheduler struct {
	bookingRepo domain.BookingRepository
	ticker      *time.Ticker
}

// NewBookingScheduler creates a scheduler that closes out overdue stays.
func NewBookingScheduler(bookingRepo domain.BookingRepository) *BookingScheduler {
	return &BookingScheduler{
		bookingRepo: bookingRepo,
	}
}

// Start runs one sweep immediately, then every 24 hours at 00:01.
func (s *BookingScheduler) Start() {
	log.Println("Booking scheduler started - runs every 24 hours")

	s.CompleteOverdueBookings()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("Next scheduled run: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.CompleteOverdueBookings()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.CompleteOverdueBookings()
			}
		}()
	})
}

// Stop halts the scheduler.
func (s *BookingScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Booking scheduler stopped")
	}
}

// CompleteOverdueBookings checks out in-house bookings past their check-out
// date.
func (s *BookingScheduler) CompleteOverdueBookings() {
	n, err := s.bookingRepo.CompleteExpired(time.Now())
	if err != nil {
		log.Printf("Error completing overdue bookings: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Marked %d overdue bookings as checked out", n)
	}
}
