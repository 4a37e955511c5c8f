package reports

import (
	"time"
)

// Window is an inclusive [From, To] date range. A nil bound leaves that side
// unbounded.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Bounded reports whether both bounds are present. Growth comparisons need a
// bounded window; everything else tolerates open sides.
func (w Window) Bounded() bool {
	return w.From != nil && w.To != nil
}

// Empty reports whether the window carries no bounds at all.
func (w Window) Empty() bool {
	return w.From == nil && w.To == nil
}

// Duration returns To−From for a bounded window, zero otherwise.
func (w Window) Duration() time.Duration {
	if !w.Bounded() {
		return 0
	}
	return w.To.Sub(*w.From)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ParseDate accepts the yyyy-mm-dd strings the UI sends, falling back to
// RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// WindowFromQuery resolves optional fromDate/toDate query strings into a
// normalized window: from is widened to the start of its day, to to the end.
// A missing parameter leaves that side unbounded.
func WindowFromQuery(fromStr, toStr string) (Window, error) {
	var w Window
	if fromStr != "" {
		from, err := ParseDate(fromStr)
		if err != nil {
			return Window{}, err
		}
		from = StartOfDay(from)
		w.From = &from
	}
	if toStr != "" {
		to, err := ParseDate(toStr)
		if err != nil {
			return Window{}, err
		}
		to = EndOfDay(to)
		w.To = &to
	}
	return w, nil
}

// ResolveWindow maps a named period onto concrete boundaries relative to now.
// custom hands back the caller-supplied window unchanged; unknown periods and
// an empty custom window resolve to no filter.
func ResolveWindow(period string, custom Window, now time.Time) (Window, bool) {
	window := func(from, to time.Time) (Window, bool) {
		return Window{From: &from, To: &to}, true
	}

	switch period {
	case "today":
		return window(StartOfDay(now), EndOfDay(now))
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return window(StartOfDay(y), EndOfDay(y))
	case "week":
		return window(StartOfDay(now.AddDate(0, 0, -6)), EndOfDay(now))
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return window(first, EndOfDay(last))
	case "custom":
		if custom.Empty() {
			return Window{}, false
		}
		return custom, true
	default:
		return Window{}, false
	}
}

// SafetyBoundary is the fixed cutoff before which orders may be deleted:
// now − 7 days, truncated to start of day. Always recomputed from the caller
// supplied clock, never cached.
func SafetyBoundary(now time.Time) time.Time {
	return StartOfDay(now.AddDate(0, 0, -7))
}

// PreviousPeriod returns the equal-length window immediately preceding w:
// [from − duration, from). The returned To is exclusive by construction, so
// callers filter with gte/lt.
func PreviousPeriod(w Window) (time.Time, time.Time, bool) {
	if !w.Bounded() {
		return time.Time{}, time.Time{}, false
	}
	return w.From.Add(-w.Duration()), *w.From, true
}
