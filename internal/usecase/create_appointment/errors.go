package create_appointment

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в CustomerService
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrGroomerNotFound возвращается, когда грумер не найден в GroomerService
	ErrGroomerNotFound = errors.New("create_appointment: groomer not found")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("create_appointment: invalid date range")

	// ErrOverCapacity возвращается, когда хотя бы на один день интервала не хватает мест
	ErrOverCapacity = errors.New("create_appointment: groomer capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
