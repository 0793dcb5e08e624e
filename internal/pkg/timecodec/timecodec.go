// Package timecodec converts between human-entered 12-hour clock strings
// ("9:00 AM", "9:00 AM–9:50 AM at WALC 101") and a fractional-hour value
// usable for ordering and timeline layout math.
package timecodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

// Range separators accepted between a start and end time. Schedule text
// pasted from university sources uses an en-dash; hand-typed input uses a
// plain hyphen.
var rangeSeparators = []string{"–", "-"}

// CustomOption is the sentinel picker entry that switches the caller into
// free-text time entry mode.
const CustomOption = "Other (Custom Time)"

// Parse converts a 12-hour display string to a fractional hour since
// midnight (9:30 AM -> 9.5). The string may be a bare time, a time range, or
// a composite like "9:00 AM–9:50 AM at WALC 101"; only the start-time token
// is considered. Malformed input returns ErrParseFailure.
func Parse(s string) (float64, error) {
	hour, minute, err := clockParts(s)
	if err != nil {
		return 0, err
	}
	return float64(hour) + float64(minute)/60, nil
}

// Format renders a fractional hour as a normalized 12-hour display string.
// Values are wrapped into [0, 24).
func Format(frac float64) string {
	frac = math.Mod(frac, 24)
	if frac < 0 {
		frac += 24
	}

	hour := int(frac)
	minute := int(math.Round((frac - float64(hour)) * 60))
	if minute == 60 {
		minute = 0
		hour = (hour + 1) % 24
	}
	return formatClock(hour, minute)
}

// AddOneHour returns a display string exactly one clock-hour later,
// flipping AM/PM at the 12 o'clock boundary. Minutes are preserved; a
// missing minute component defaults to 0.
func AddOneHour(s string) (string, error) {
	hour, minute, err := clockParts(s)
	if err != nil {
		return "", err
	}
	return formatClock((hour+1)%24, minute), nil
}

// PickerOptions returns the fixed half-hour picker vocabulary: 25 options
// spanning 7:00 AM through 7:00 PM inclusive, followed by CustomOption.
func PickerOptions() []string {
	options := make([]string, 0, 26)
	for i := 0; i < 25; i++ {
		hour := i/2 + 7
		minute := 0
		if i%2 == 1 {
			minute = 30
		}
		options = append(options, formatClock(hour, minute))
	}
	return append(options, CustomOption)
}

// clockParts isolates the start-time token of s and returns its 24-hour
// clock components.
func clockParts(s string) (hour, minute int, err error) {
	token := s
	if idx := strings.Index(token, " at "); idx >= 0 {
		token = token[:idx]
	}
	for _, sep := range rangeSeparators {
		if idx := strings.Index(token, sep); idx >= 0 {
			token = token[:idx]
		}
	}
	token = strings.TrimSpace(token)

	fields := strings.Fields(token)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrParseFailure, s)
	}

	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return 0, 0, fmt.Errorf("%w: unknown period in %q", apperrors.ErrParseFailure, s)
	}

	hourStr, minuteStr, hasMinute := strings.Cut(fields[0], ":")
	hour, err = strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("%w: bad hour in %q", apperrors.ErrParseFailure, s)
	}
	if hasMinute {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: bad minute in %q", apperrors.ErrParseFailure, s)
		}
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}

// formatClock renders 24-hour clock components as a 12-hour display string.
func formatClock(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
