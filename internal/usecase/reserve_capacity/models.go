package reserve_capacity

import "time"

// Request модель запроса на резервирование мест
type Request struct {
	GroomerID string    // ID грумера (UUID)
	StartDate time.Time // Дата заезда
	EndDate   time.Time // Дата отъезда
	Units     int       // Количество мест на каждый день интервала
}

// Response модель ответа о резервировании
type Response struct {
	Admitted bool `json:"admitted"` // Места зарезервированы
	Days     int  `json:"days"`     // Количество дней, на которые выполнено резервирование
}
