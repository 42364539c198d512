package get_remaining_capacity

import "errors"

var (
	// ErrGroomerNotFound возвращается, когда грумер не найден в GroomerService
	ErrGroomerNotFound = errors.New("get_remaining_capacity: groomer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_remaining_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_remaining_capacity: internal error")
)
