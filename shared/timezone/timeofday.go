package timezone

import (
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time of day without a date component. Spreadsheet
// feeds deliver times in several shapes ("8:00", "08:00:00", "8:00 AM", and
// ISO timestamps against the 1899-12-30 epoch); this is the single canonical
// representation for all of them.
type TimeOfDay struct {
	Hour   int  `json:"hour"`
	Minute int  `json:"minute"`
	Valid  bool `json:"valid"`
}

// ParseTimeOfDay parses a raw time value from the upstream feed. ISO
// timestamps carry the time as UTC plus the spreadsheet clock offset.
// Unparsable values yield an invalid TimeOfDay.
func ParseTimeOfDay(raw string, offsetHours int) TimeOfDay {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return TimeOfDay{}
	}

	if strings.Contains(raw, "T") {
		return parseISOTime(raw, offsetHours)
	}

	return parseClockTime(raw)
}

// String formats the time as 12-hour "H:MM AM/PM", or "N/A" when invalid.
func (t TimeOfDay) String() string {
	if !t.Valid {
		return "N/A"
	}

	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}

	hour12 := t.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	minute := strconv.Itoa(t.Minute)
	if t.Minute < 10 {
		minute = "0" + minute
	}

	return strconv.Itoa(hour12) + ":" + minute + " " + period
}

func parseISOTime(raw string, offsetHours int) TimeOfDay {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return TimeOfDay{}
	}

	utc := parsed.UTC()
	hour := (utc.Hour() + offsetHours) % 24
	if hour < 0 {
		hour += 24
	}

	return TimeOfDay{Hour: hour, Minute: utc.Minute(), Valid: true}
}

func parseClockTime(raw string) TimeOfDay {
	period := ""
	value := raw

	upper := strings.ToUpper(value)
	switch {
	case strings.HasSuffix(upper, "AM"):
		period = "AM"
		value = strings.TrimSpace(value[:len(value)-2])
	case strings.HasSuffix(upper, "PM"):
		period = "PM"
		value = strings.TrimSpace(value[:len(value)-2])
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}
	}

	if minute < 0 || minute > 59 {
		return TimeOfDay{}
	}

	switch period {
	case "AM":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return TimeOfDay{}
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute, Valid: true}
}
