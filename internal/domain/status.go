package domain

import "fmt"

// Status статус жизненного цикла записи
// Прямой поток: awaiting -> staying -> left
type Status string

const (
	// StatusAwaiting клиент ещё не приехал (начальный статус)
	StatusAwaiting Status = "awaiting"
	// StatusStaying питомец находится у грумера
	StatusStaying Status = "staying"
	// StatusLeft клиент уехал (терминальный статус)
	StatusLeft Status = "left"
)

// statusFromWire явная таблица соответствия внешнего представления статусам
// Замкнутое множество: любое другое значение отклоняется при парсинге
var statusFromWire = map[string]Status{
	"awaiting": StatusAwaiting,
	"staying":  StatusStaying,
	"left":     StatusLeft,
}

// ParseStatus парсит статус из внешнего представления
func ParseStatus(s string) (Status, error) {
	status, ok := statusFromWire[s]
	if !ok {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return status, nil
}

// CanTransition проверяет допустимость перехода между статусами
// Запрещены только обратные переходы:
//   - staying -> awaiting (клиент не может "разприехать")
//   - left -> staying (клиент не может "разуехать")
//
// Повторная установка текущего статуса допустима (идемпотентный no-op)
func CanTransition(current, requested Status) bool {
	if current == StatusStaying && requested == StatusAwaiting {
		return false
	}
	if current == StatusLeft && requested == StatusStaying {
		return false
	}
	return true
}
