package reports

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestResolveWindowToday(t *testing.T) {
	w, ok := ResolveWindow("today", Window{}, testNow)
	if !ok {
		t.Fatal("expected a window for today")
	}
	wantFrom := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !w.From.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", w.From, wantFrom)
	}
	if w.To.Day() != 15 || w.To.Hour() != 23 || w.To.Minute() != 59 {
		t.Errorf("to = %v, want end of the same day", w.To)
	}
}

func TestResolveWindowYesterday(t *testing.T) {
	w, ok := ResolveWindow("yesterday", Window{}, testNow)
	if !ok {
		t.Fatal("expected a window for yesterday")
	}
	if w.From.Day() != 14 || w.To.Day() != 14 {
		t.Errorf("window = [%v, %v], want both bounds on the 14th", w.From, w.To)
	}
}

func TestResolveWindowWeekCoversSevenDays(t *testing.T) {
	w, ok := ResolveWindow("week", Window{}, testNow)
	if !ok {
		t.Fatal("expected a window for week")
	}
	wantFrom := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	if !w.From.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", w.From, wantFrom)
	}
	if w.To.Day() != 15 {
		t.Errorf("to = %v, want end of today", w.To)
	}
}

func TestResolveWindowMonth(t *testing.T) {
	w, ok := ResolveWindow("month", Window{}, testNow)
	if !ok {
		t.Fatal("expected a window for month")
	}
	if w.From.Day() != 1 || w.From.Month() != time.March {
		t.Errorf("from = %v, want March 1st", w.From)
	}
	if w.To.Day() != 31 || w.To.Month() != time.March {
		t.Errorf("to = %v, want March 31st", w.To)
	}
}

func TestResolveWindowCustom(t *testing.T) {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	custom := Window{From: &from}

	w, ok := ResolveWindow("custom", custom, testNow)
	if !ok {
		t.Fatal("expected the custom window back")
	}
	if w.From == nil || !w.From.Equal(from) {
		t.Errorf("from = %v, want %v", w.From, from)
	}
	if w.To != nil {
		t.Errorf("to = %v, want unbounded", w.To)
	}

	if _, ok := ResolveWindow("custom", Window{}, testNow); ok {
		t.Error("empty custom window should resolve to no filter")
	}
}

func TestResolveWindowUnknownPeriod(t *testing.T) {
	if _, ok := ResolveWindow("fortnight", Window{}, testNow); ok {
		t.Error("unknown period should resolve to no filter")
	}
}

func TestSafetyBoundary(t *testing.T) {
	got := SafetyBoundary(testNow)
	want := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SafetyBoundary = %v, want %v", got, want)
	}
}

func TestPreviousPeriod(t *testing.T) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	w := Window{From: &from, To: &to}

	prevFrom, prevTo, ok := PreviousPeriod(w)
	if !ok {
		t.Fatal("expected a previous period for a bounded window")
	}
	if !prevTo.Equal(from) {
		t.Errorf("prevTo = %v, want %v", prevTo, from)
	}
	if got := prevTo.Sub(prevFrom); got != w.Duration() {
		t.Errorf("previous duration = %v, want %v", got, w.Duration())
	}

	if _, _, ok := PreviousPeriod(Window{From: &from}); ok {
		t.Error("half-bounded window should have no previous period")
	}
}

func TestWindowFromQuery(t *testing.T) {
	w, err := WindowFromQuery("2025-03-01", "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if w.From.Hour() != 0 || w.From.Day() != 1 {
		t.Errorf("from = %v, want start of March 1st", w.From)
	}
	if w.To.Hour() != 23 || w.To.Day() != 10 {
		t.Errorf("to = %v, want end of March 10th", w.To)
	}

	w, err = WindowFromQuery("", "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if w.From != nil {
		t.Errorf("from = %v, want unbounded", w.From)
	}

	if _, err := WindowFromQuery("not-a-date", ""); err == nil {
		t.Error("expected an error for garbage input")
	}
}
