package appointments

import "errors"

var (
	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrCustomerNotFound клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrGroomerNotFound грумер не найден
	ErrGroomerNotFound = errors.New("groomer not found")
	// ErrIncorrectStatusFlow запрошенный переход статуса запрещён
	ErrIncorrectStatusFlow = errors.New("incorrect status flow")
	// ErrNotReschedulable даты можно менять только до заселения
	ErrNotReschedulable = errors.New("appointment cannot be rescheduled")
	// ErrInvalidDateRange дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidMonth месяц вне диапазона 1-12
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
