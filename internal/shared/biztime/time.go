// Package biztime provides the timestamp conventions used across the service.
// Storage is UTC. The business timezone is only used when a timestamp is
// rendered for people (mail templates, exports).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"

	// DateLayout is the layout used by the formattime template helper.
	DateLayout = "2006-01-02"

	// NaiveLayout is the zone-less wire format of ticket and comment times.
	NaiveLayout = "2006-01-02T15:04:05.999999999"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing it with the
// default when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// FormatDate renders t as a calendar date in the business timezone.
func FormatDate(t time.Time) string {
	return FormatInBizTimezone(t, DateLayout)
}

// ParseNaive parses a wire timestamp. Zone-less values are taken as UTC;
// RFC 3339 values are converted to UTC.
func ParseNaive(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(NaiveLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05.999999999", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// NaiveTime is a UTC instant that travels over JSON without a zone suffix,
// e.g. "2024-03-01T09:30:00".
type NaiveTime struct {
	time.Time
}

func NewNaiveTime(t time.Time) NaiveTime {
	return NaiveTime{Time: t.UTC()}
}

func (n NaiveTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.UTC().Format(NaiveLayout) + `"`), nil
}

func (n *NaiveTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		n.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	t, err := ParseNaive(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	n.Time = t
	return nil
}
