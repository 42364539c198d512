package reserve_capacity

import "errors"

var (
	// ErrGroomerNotFound возвращается, когда грумер не найден в GroomerService
	ErrGroomerNotFound = errors.New("reserve_capacity: groomer not found")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("reserve_capacity: invalid date range")

	// ErrOverCapacity возвращается, когда хотя бы на один день интервала не хватает мест
	ErrOverCapacity = errors.New("reserve_capacity: groomer capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_capacity: internal error")
)
