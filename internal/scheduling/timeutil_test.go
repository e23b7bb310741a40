package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"9:05", 545, true},
		{"09:05", 545, true},
		{"09:05:30", 545, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:30:61", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"123:00", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseTimeToMinutes(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestFormatMinutesToHHmm(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutesToHHmm(0))
	assert.Equal(t, "10:05", FormatMinutesToHHmm(605))
	assert.Equal(t, "23:59", FormatMinutesToHHmm(1439))
	assert.Equal(t, "23:59", FormatMinutesToHHmm(2000))
	assert.Equal(t, "00:00", FormatMinutesToHHmm(-5))
}

func TestDayOfWeekFromISODate(t *testing.T) {
	assert.Equal(t, 6, DayOfWeekFromISODate("2024-06-01"))
	assert.Equal(t, 0, DayOfWeekFromISODate("2024-06-02"))
	assert.Equal(t, -1, DayOfWeekFromISODate("06/02/2024"))
}

func TestIsISODateString(t *testing.T) {
	assert.True(t, IsISODateString("2024-02-29"))
	assert.False(t, IsISODateString("2024-02-30"))
	assert.False(t, IsISODateString("2024-2-3"))
	assert.False(t, IsISODateString(""))
}

func TestEnumerateISODates(t *testing.T) {
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"},
		EnumerateISODates("2024-06-01", "2024-06-03", 10))
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		EnumerateISODates("2024-02-28", "2024-03-01", 10))
	assert.Len(t, EnumerateISODates("2024-06-01", "2024-06-30", 5), 5)
	assert.Empty(t, EnumerateISODates("2024-06-03", "2024-06-01", 10))
	assert.Empty(t, EnumerateISODates("nope", "2024-06-01", 10))
	assert.Equal(t, []string{"2024-06-01"}, EnumerateISODates("2024-06-01", "2024-06-01", 0))
}
