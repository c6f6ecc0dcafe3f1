// Package biztime holds the console's notion of time. Storage and transport
// use UTC; the display timezone only affects rendering.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the display timezone. Only the first call has any effect.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		if bizLocation, initErr = time.LoadLocation(tz); initErr != nil {
			initErr = fmt.Errorf("unknown display timezone %q: %w", tz, initErr)
		}
	})
	return initErr
}

// Location returns the display timezone, initialising it with UTC when unset.
func Location() *time.Location {
	_ = Init("")
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

func FormatInBizTimezone(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location()).Format(layout)
}
