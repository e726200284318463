package application

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCeilDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same instant", date("2024-01-10"), date("2024-01-10"), 0},
		{"exact days forward", date("2024-01-10"), date("2024-01-12"), 2},
		{"partial day rounds up", date("2024-01-10"), date("2024-01-10").Add(6 * time.Hour), 1},
		{"just over a day rounds up", date("2024-01-10"), date("2024-01-11").Add(time.Minute), 2},
		{"backward", date("2024-01-12"), date("2024-01-10"), -2},
		{"backward partial", date("2024-01-12"), date("2024-01-10").Add(6 * time.Hour), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CeilDays(tt.from, tt.to); got != tt.want {
				t.Errorf("CeilDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeStayAdjustment_Extend(t *testing.T) {
	nightly := decimal.NewFromInt(1000)
	adj, err := ComputeStayAdjustment(date("2024-01-10"), date("2024-01-12"), date("2024-01-14"), nightly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.DayDelta != 2 {
		t.Errorf("DayDelta = %d, want 2", adj.DayDelta)
	}
	if !adj.AmountDelta.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("AmountDelta = %s, want 2000", adj.AmountDelta)
	}
	if adj.NewNights != 4 {
		t.Errorf("NewNights = %d, want 4", adj.NewNights)
	}
}

func TestComputeStayAdjustment_Reduce(t *testing.T) {
	nightly := decimal.NewFromInt(1000)
	adj, err := ComputeStayAdjustment(date("2024-01-10"), date("2024-01-12"), date("2024-01-11"), nightly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.DayDelta != -1 {
		t.Errorf("DayDelta = %d, want -1", adj.DayDelta)
	}
	if !adj.AmountDelta.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("AmountDelta = %s, want -1000", adj.AmountDelta)
	}
	if adj.NewNights != 1 {
		t.Errorf("NewNights = %d, want 1", adj.NewNights)
	}
}

func TestComputeStayAdjustment_NoChange(t *testing.T) {
	adj, err := ComputeStayAdjustment(date("2024-01-10"), date("2024-01-12"), date("2024-01-12"), decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.DayDelta != 0 {
		t.Errorf("DayDelta = %d, want 0", adj.DayDelta)
	}
	if !adj.AmountDelta.IsZero() {
		t.Errorf("AmountDelta = %s, want 0", adj.AmountDelta)
	}
}

func TestComputeStayAdjustment_BeforeCheckIn(t *testing.T) {
	_, err := ComputeStayAdjustment(date("2024-01-10"), date("2024-01-12"), date("2024-01-09"), decimal.NewFromInt(1000))
	if !errors.Is(err, ErrCheckOutBeforeCheckIn) {
		t.Errorf("err = %v, want ErrCheckOutBeforeCheckIn", err)
	}
}

func TestComputeRoomChange_Split(t *testing.T) {
	k := 2
	quote, err := ComputeRoomChange(
		date("2024-01-10"), date("2024-01-15"),
		decimal.NewFromInt(800), decimal.NewFromInt(1200), &k,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalDays != 5 {
		t.Errorf("TotalDays = %d, want 5", quote.TotalDays)
	}
	if !quote.SplitApplied {
		t.Error("SplitApplied = false, want true")
	}
	if !quote.OldSegmentCost.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("OldSegmentCost = %s, want 1600", quote.OldSegmentCost)
	}
	if !quote.NewSegmentCost.Equal(decimal.NewFromInt(3600)) {
		t.Errorf("NewSegmentCost = %s, want 3600", quote.NewSegmentCost)
	}
	if !quote.NewRoomCost.Equal(decimal.NewFromInt(5200)) {
		t.Errorf("NewRoomCost = %s, want 5200", quote.NewRoomCost)
	}
}

func TestComputeRoomChange_SplitFromFirstNight(t *testing.T) {
	k := 0
	quote, err := ComputeRoomChange(
		date("2024-01-10"), date("2024-01-12"),
		decimal.NewFromInt(800), decimal.NewFromInt(1200), &k,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.OldSegmentCost.IsZero() {
		t.Errorf("OldSegmentCost = %s, want 0", quote.OldSegmentCost)
	}
	if !quote.NewRoomCost.Equal(decimal.NewFromInt(2400)) {
		t.Errorf("NewRoomCost = %s, want 2400", quote.NewRoomCost)
	}
}

func TestComputeRoomChange_SingleNightIgnoresSplit(t *testing.T) {
	quote, err := ComputeRoomChange(
		date("2024-01-10"), date("2024-01-11"),
		decimal.NewFromInt(800), decimal.NewFromInt(1200), nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.SplitApplied {
		t.Error("SplitApplied = true, want false")
	}
	if !quote.NewRoomCost.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("NewRoomCost = %s, want 1200", quote.NewRoomCost)
	}
}

func TestComputeRoomChange_SplitRequired(t *testing.T) {
	_, err := ComputeRoomChange(
		date("2024-01-10"), date("2024-01-13"),
		decimal.NewFromInt(800), decimal.NewFromInt(1200), nil,
	)
	if !errors.Is(err, ErrSplitRequired) {
		t.Errorf("err = %v, want ErrSplitRequired", err)
	}
}

func TestComputeRoomChange_SplitOutOfRange(t *testing.T) {
	for _, k := range []int{-1, 3, 4} {
		k := k
		_, err := ComputeRoomChange(
			date("2024-01-10"), date("2024-01-13"),
			decimal.NewFromInt(800), decimal.NewFromInt(1200), &k,
		)
		if !errors.Is(err, ErrSplitOutOfRange) {
			t.Errorf("k=%d: err = %v, want ErrSplitOutOfRange", k, err)
		}
	}
}

func TestPaymentProgress(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		paid  int64
		want  int
	}{
		{"zero total", 0, 0, 0},
		{"nothing paid", 5000, 0, 0},
		{"half paid", 5000, 2500, 50},
		{"fully paid", 5000, 5000, 100},
		{"rounds", 3000, 1000, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentProgress(decimal.NewFromInt(tt.total), decimal.NewFromInt(tt.paid))
			if got != tt.want {
				t.Errorf("PaymentProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFullyPaid(t *testing.T) {
	if !FullyPaid(decimal.Zero) {
		t.Error("FullyPaid(0) = false, want true")
	}
	if FullyPaid(decimal.NewFromInt(1)) {
		t.Error("FullyPaid(1) = true, want false")
	}
}
