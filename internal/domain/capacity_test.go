package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayOf(t *testing.T) {
	moment := time.Date(2026, time.September, 1, 17, 45, 12, 0, time.UTC)
	assert.Equal(t, date(2026, time.September, 1), DayOf(moment))

	// Момент в другом часовом поясе нормализуется к UTC дню
	msk := time.FixedZone("MSK", 3*60*60)
	late := time.Date(2026, time.September, 2, 1, 30, 0, 0, msk)
	assert.Equal(t, date(2026, time.September, 1), DayOf(late))
}

func TestDaysBetween_HalfOpen(t *testing.T) {
	days := DaysBetween(date(2026, time.September, 1), date(2026, time.September, 4))

	// День отъезда (4-е) не входит в интервал
	require.Len(t, days, 3)
	assert.Equal(t, date(2026, time.September, 1), days[0])
	assert.Equal(t, date(2026, time.September, 2), days[1])
	assert.Equal(t, date(2026, time.September, 3), days[2])
}

func TestDaysBetween_SameDay(t *testing.T) {
	days := DaysBetween(date(2026, time.September, 1), date(2026, time.September, 1))
	assert.Empty(t, days)
}

func TestDaysBetween_SingleNight(t *testing.T) {
	days := DaysBetween(date(2026, time.September, 1), date(2026, time.September, 2))
	require.Len(t, days, 1)
	assert.Equal(t, date(2026, time.September, 1), days[0])
}

func TestDaysBetween_Reversed(t *testing.T) {
	days := DaysBetween(date(2026, time.September, 4), date(2026, time.September, 1))
	assert.Empty(t, days)
}

func TestDaysBetween_MonthBoundary(t *testing.T) {
	days := DaysBetween(date(2026, time.August, 30), date(2026, time.September, 2))
	require.Len(t, days, 3)
	assert.Equal(t, date(2026, time.August, 31), days[1])
	assert.Equal(t, date(2026, time.September, 1), days[2])
}
