package handlers

import (
	"testing"
	"time"

	"jennamart/internal/reports"
)

func TestDailyWindowDefaultsToLastSevenDays(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)

	window := dailyWindow(reports.Window{}, now)

	if window.From == nil || window.To == nil {
		t.Fatal("default window must be bounded")
	}
	if window.From.Day() != 9 {
		t.Errorf("from = %v, want March 9th", window.From)
	}
	if window.To.Day() != 15 {
		t.Errorf("to = %v, want end of today", window.To)
	}
}

func TestDailyWindowKeepsSuppliedBound(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	window := dailyWindow(reports.Window{From: &from}, now)

	if window.From == nil || !window.From.Equal(from) {
		t.Errorf("from = %v, want the supplied bound kept", window.From)
	}
	if window.To == nil || window.To.Day() != 15 {
		t.Errorf("to = %v, want the default end of today", window.To)
	}

	to := time.Date(2025, time.February, 10, 23, 59, 59, 0, time.UTC)
	window = dailyWindow(reports.Window{To: &to}, now)

	if window.To == nil || !window.To.Equal(to) {
		t.Errorf("to = %v, want the supplied bound kept", window.To)
	}
	if window.From == nil || window.From.Day() != 9 {
		t.Errorf("from = %v, want the default start", window.From)
	}
}

func TestDailyWindowLeavesBoundedWindowAlone(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC)

	window := dailyWindow(reports.Window{From: &from, To: &to}, now)

	if !window.From.Equal(from) || !window.To.Equal(to) {
		t.Errorf("window = [%v, %v], want unchanged", window.From, window.To)
	}
}
