package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeSlot parses a 12-hour clock token such as "02:30 PM" or "9:00 AM"
// into a 24-hour (hour, minute) pair. Minutes must be zero-padded to two
// digits; the marker must be AM or PM. 12 AM maps to hour 0 and 12 PM stays
// 12. Malformed tokens return an error and must be treated as never
// joinable by callers, never as a fault.
func ParseTimeSlot(slot string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(slot))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("schedule: malformed time slot %q", slot)
	}

	marker := strings.ToUpper(fields[1])
	if marker != "AM" && marker != "PM" {
		return 0, 0, fmt.Errorf("schedule: bad meridiem in time slot %q", slot)
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 || len(hm[1]) != 2 {
		return 0, 0, fmt.Errorf("schedule: malformed time slot %q", slot)
	}

	hour, err = strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("schedule: bad hour in time slot %q", slot)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("schedule: bad minute in time slot %q", slot)
	}

	if marker == "PM" && hour != 12 {
		hour += 12
	}
	if marker == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}
