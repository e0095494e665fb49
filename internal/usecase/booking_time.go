package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// To24Hour converts "hh:mm AM|PM" to "HH:mm". An hour of 12 becomes 00
// first and PM then adds 12, so 12:30 PM is 12:30 and 12:30 AM is 00:30.
// Only an exact "PM" marker shifts the hour; any other marker reads as AM.
func To24Hour(clock string) (string, error) {
	parts := strings.Fields(clock)
	if len(parts) != 2 {
		return "", fmt.Errorf("time %q: want hh:mm AM|PM", clock)
	}
	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 || len(hm[1]) != 2 {
		return "", fmt.Errorf("time %q: want hh:mm AM|PM", clock)
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return "", fmt.Errorf("time %q: hour: %w", clock, err)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return "", fmt.Errorf("time %q: minute: %w", clock, err)
	}

	if hm[0] == "12" {
		hours = 0
	}
	if parts[1] == "PM" {
		hours += 12
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("time %q: out of range", clock)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// CombineDateTime joins a YYYY-MM-DD date and a 12-hour clock time into one
// instant in loc.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	hhmm, err := To24Hour(clock)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", date, err)
	}
	return t, nil
}
