package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment представляет запись к грумеру
type Appointment struct {
	ID         string // uuid, генерируется при создании
	CustomerID string
	GroomerID  string
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	Pets       []Pet
	TotalPrice decimal.Decimal
	PriceTier  string
	// TransactionID ссылка на платеж во внешнем платежном сервисе
	TransactionID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeRescheduled returns true, если даты записи можно изменить
// Перенос разрешен только пока клиент не приехал
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusAwaiting
}

// HasLeft returns true, если клиент уже уехал (запись завершена)
func (a *Appointment) HasLeft() bool {
	return a.Status == StatusLeft
}

// PetNames возвращает имена всех питомцев записи
func (a *Appointment) PetNames() []string {
	names := make([]string, len(a.Pets))
	for i, pet := range a.Pets {
		names[i] = pet.Name
	}
	return names
}

// GroomerAppointmentsFilter фильтр для получения записей грумера
type GroomerAppointmentsFilter struct {
	GroomerID string  // Обязательный параметр
	Status    *Status // Фильтр по статусу (опционально)
}
