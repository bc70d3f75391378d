package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		slot    string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00 AM", 9, 0, false},
		{"9:30 AM", 9, 30, false},
		{"12:00 AM", 0, 0, false}, // midnight
		{"12:00 PM", 12, 0, false},
		{"12:30 PM", 12, 30, false},
		{"01:00 PM", 13, 0, false},
		{"11:59 PM", 23, 59, false},
		{"02:30 PM", 14, 30, false},
		{"", 0, 0, true},
		{"2:30", 0, 0, true},
		{"2:30 XM", 0, 0, true},
		{"13:00 PM", 0, 0, true},
		{"0:30 AM", 0, 0, true},
		{"2:5 PM", 0, 0, true}, // minutes must be zero-padded
		{"2:60 PM", 0, 0, true},
		{"garbage", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			h, m, err := ParseTimeSlot(tt.slot)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, h)
			assert.Equal(t, tt.minute, m)
		})
	}
}

func dayAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWindowBounds(t *testing.T) {
	s := Session{
		ID:         "s1",
		OfferingID: "fc8", // full class, 55 min
		Date:       dayAt(2026, time.March, 10),
		TimeSlot:   "02:00 PM",
	}

	w, ok := Window(s)
	require.True(t, ok)

	scheduled := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, scheduled.Add(-2*time.Minute), w.Start)
	assert.Equal(t, scheduled.Add(55*time.Minute), w.End)
	assert.True(t, w.Start.Before(scheduled))
	assert.True(t, scheduled.Before(w.End) || scheduled.Equal(w.End))
	assert.Equal(t, 57*time.Minute, w.End.Sub(w.Start))
}

func TestWindowHalfClassAndDanglingOffering(t *testing.T) {
	half := Session{ID: "s2", OfferingID: "hc2", Date: dayAt(2026, time.March, 10), TimeSlot: "09:00 AM"}
	w, ok := Window(half)
	require.True(t, ok)
	assert.Equal(t, 27*time.Minute, w.End.Sub(w.Start))

	// Dangling offering ids default to the short duration rather than failing.
	dangling := Session{ID: "s3", OfferingID: "no-such-offering", Date: dayAt(2026, time.March, 10), TimeSlot: "09:00 AM"}
	w, ok = Window(dangling)
	require.True(t, ok)
	assert.Equal(t, 27*time.Minute, w.End.Sub(w.Start))
}

func TestClassifyFullClassBoundaries(t *testing.T) {
	s := Session{ID: "s1", OfferingID: "fc8", Date: dayAt(2026, time.March, 10), TimeSlot: "02:00 PM"}
	at := func(h, m int) time.Time {
		return time.Date(2026, time.March, 10, h, m, 0, 0, time.UTC)
	}

	// In-window holds for [1:58 PM, 2:55 PM], inclusive at both ends.
	assert.Equal(t, BeforeWindow, Classify(s, at(13, 57)))
	assert.Equal(t, InWindow, Classify(s, at(13, 58)))
	assert.Equal(t, InWindow, Classify(s, at(14, 0)))
	assert.Equal(t, InWindow, Classify(s, at(14, 55)))
	assert.Equal(t, AfterWindow, Classify(s, at(14, 56)))
}

func TestClassifyMalformedSlotNeverJoinable(t *testing.T) {
	s := Session{ID: "s1", OfferingID: "fc8", Date: dayAt(2026, time.March, 10), TimeSlot: ""}
	assert.Equal(t, BeforeWindow, Classify(s, time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)))

	s.TimeSlot = "25:99 ZM"
	assert.Equal(t, BeforeWindow, Classify(s, time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)))
}

func TestClassifyIsDeterministic(t *testing.T) {
	s := Session{ID: "s1", OfferingID: "hc2", Date: dayAt(2026, time.March, 10), TimeSlot: "10:30 AM"}
	now := time.Date(2026, time.March, 10, 10, 31, 0, 0, time.UTC)
	first := Classify(s, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(s, now))
	}
}

func TestStartTimeZeroesSeconds(t *testing.T) {
	s := Session{
		ID:         "s1",
		OfferingID: "hc2",
		Date:       time.Date(2026, time.March, 10, 7, 42, 31, 999, time.UTC),
		TimeSlot:   "10:30 AM",
	}
	start, ok := s.StartTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.March, 10, 10, 30, 0, 0, time.UTC), start)
}
