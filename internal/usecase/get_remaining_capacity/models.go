package get_remaining_capacity

import "time"

// Request модель запроса окна доступности
type Request struct {
	GroomerID string    // ID грумера (UUID)
	From      time.Time // Начало окна, нулевое значение означает сегодняшний день
	Limit     int       // Размер окна в днях, 0 означает значение по умолчанию
}

// DayCapacityResponse доступность грумера на один день
type DayCapacityResponse struct {
	Day            string `json:"day"` // "2026-09-01"
	BookedUnits    int    `json:"bookedUnits"`
	MaxUnits       int    `json:"maxUnits"`
	RemainingUnits int    `json:"remainingUnits"`
}

// Response модель ответа с окном доступности по дням
type Response struct {
	GroomerID string                `json:"groomerId"`
	Days      []DayCapacityResponse `json:"days"`
}
