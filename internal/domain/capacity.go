package domain

import "time"

// CapacityRecord счетчик занятых мест грумера на календарный день
// Записи создаются лениво при первом резервировании дня и никогда не удаляются:
// отсутствие записи эквивалентно нулю занятых мест
type CapacityRecord struct {
	GroomerID   string
	Day         time.Time // Дата без времени (UTC полночь)
	BookedUnits int
}

// DayCapacity вместимость грумера на день для отображения доступности
type DayCapacity struct {
	Day            time.Time
	BookedUnits    int
	MaxUnits       int
	RemainingUnits int
}

// DayOf нормализует момент времени до календарного дня (UTC полночь)
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween разворачивает интервал [start, end) в список календарных дней
// День отъезда вместимость не потребляет, поэтому end исключается.
// Если start и end приходятся на один день (или start позже end), список пуст
func DaysBetween(start, end time.Time) []time.Time {
	startDay := DayOf(start)
	endDay := DayOf(end)

	days := make([]time.Time, 0)
	for day := startDay; day.Before(endDay); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
