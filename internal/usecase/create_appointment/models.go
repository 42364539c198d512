package create_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID string          // ID клиента (UUID)
	GroomerID  string          // ID грумера (UUID)
	StartDate  time.Time       // Дата заезда (без времени)
	EndDate    time.Time       // Дата отъезда (без времени)
	Pets       []domain.Pet    // Питомцы, каждый занимает одно место на каждый день
	TotalPrice decimal.Decimal // Итоговая стоимость
	PriceTier  string          // Тариф

	// TransactionID платёжная ссылка, выданная checkout-потоком.
	// Опциональна: запись без оплаты сохраняется с пустой ссылкой
	TransactionID string
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string          // ID созданной записи
	CustomerID    string          // ID клиента
	GroomerID     string          // ID грумера
	StartDate     time.Time       // Дата заезда
	EndDate       time.Time       // Дата отъезда
	Status        string          // Статус записи
	Pets          []domain.Pet    // Питомцы
	TotalPrice    decimal.Decimal // Итоговая стоимость
	PriceTier     string          // Тариф
	TransactionID string          // Платёжная ссылка записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
