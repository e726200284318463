package application

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Billing validation errors, surfaced verbatim to the operator.
var (
	ErrCheckOutBeforeCheckIn = errors.New("Check-out date cannot be before check-in date")
	ErrSplitRequired         = errors.New("Number of days before the room change is required")
	ErrSplitOutOfRange       = errors.New("Days before the room change must be between 0 and the night before check-out")
)

// CeilDays returns the calendar-day ceiling of to minus from, signed.
// Positive means to is after from. Day boundaries follow the dates' own
// locations; no timezone normalization is applied.
func CeilDays(from, to time.Time) int {
	diff := to.Sub(from)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// StayNights is the billable night count of a [checkIn, checkOut) window.
func StayNights(checkIn, checkOut time.Time) int {
	return CeilDays(checkIn, checkOut)
}

// StayAdjustment is the billing delta of moving a booking's check-out date.
type StayAdjustment struct {
	// DayDelta is signed: positive extends the stay, negative shortens it.
	DayDelta int `json:"dayDelta"`
	// AmountDelta carries DayDelta's sign: an extension is an additional
	// charge, a reduction a refund.
	AmountDelta decimal.Decimal `json:"amountDelta"`
	// NewNights is the stay length after the move, for display.
	NewNights int `json:"newNights"`
}

// ComputeStayAdjustment computes the day and amount delta of moving the
// check-out date from oldCheckOut to newCheckOut at the room's nightly rate.
// A zero day delta means nothing changed and no mutation should be issued.
func ComputeStayAdjustment(checkIn, oldCheckOut, newCheckOut time.Time, nightly decimal.Decimal) (StayAdjustment, error) {
	if newCheckOut.Before(checkIn) {
		return StayAdjustment{}, ErrCheckOutBeforeCheckIn
	}

	dayDelta := CeilDays(oldCheckOut, newCheckOut)
	return StayAdjustment{
		DayDelta:    dayDelta,
		AmountDelta: nightly.Mul(decimal.NewFromInt(int64(dayDelta))),
		NewNights:   StayNights(checkIn, newCheckOut),
	}, nil
}

// RoomChangeQuote is the preview total of swapping the assigned room. When
// the stay spans more than one night the cost is split at a caller-chosen
// day boundary between the old and the new room's rate.
type RoomChangeQuote struct {
	TotalDays       int             `json:"totalDays"`
	SplitApplied    bool            `json:"splitApplied"`
	ChangeAfterDays int             `json:"changeAfterDays"`
	OldSegmentCost  decimal.Decimal `json:"oldSegmentCost"`
	NewSegmentCost  decimal.Decimal `json:"newSegmentCost"`
	// NewRoomCost replaces the booking's room-cost component on submission.
	NewRoomCost decimal.Decimal `json:"newRoomCost"`
}

// ComputeRoomChange prices a room swap. changeAfterDays is the number of
// elapsed days billed at the old rate: 0 means the change is effective from
// the first night. It is required for stays longer than one night and must
// lie in [0, totalDays-1]. Single-night stays ignore it and bill the whole
// stay at the new rate.
func ComputeRoomChange(checkIn, checkOut time.Time, oldRate, newRate decimal.Decimal, changeAfterDays *int) (RoomChangeQuote, error) {
	totalDays := StayNights(checkIn, checkOut)

	if totalDays <= 1 {
		return RoomChangeQuote{
			TotalDays:      totalDays,
			NewSegmentCost: newRate,
			NewRoomCost:    newRate,
		}, nil
	}

	if changeAfterDays == nil {
		return RoomChangeQuote{}, ErrSplitRequired
	}
	k := *changeAfterDays
	if k < 0 || k >= totalDays {
		return RoomChangeQuote{}, ErrSplitOutOfRange
	}

	oldSegment := oldRate.Mul(decimal.NewFromInt(int64(k)))
	newSegment := newRate.Mul(decimal.NewFromInt(int64(totalDays - k)))
	return RoomChangeQuote{
		TotalDays:       totalDays,
		SplitApplied:    true,
		ChangeAfterDays: k,
		OldSegmentCost:  oldSegment,
		NewSegmentCost:  newSegment,
		NewRoomCost:     oldSegment.Add(newSegment),
	}, nil
}

// PaymentProgress returns the paid percentage, rounded. A zero total reports
// zero so an unbilled booking never divides by zero.
func PaymentProgress(total, paid decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	pct := paid.Div(total).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}

// FullyPaid reports whether nothing is outstanding.
func FullyPaid(due decimal.Decimal) bool {
	return due.IsZero()
}
