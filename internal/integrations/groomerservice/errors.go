package groomerservice

import "errors"

var (
	// ErrGroomerNotFound возвращается, когда грумер не найден
	ErrGroomerNotFound = errors.New("groomer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	// (сетевой сбой, таймаут)
	ErrInternal = errors.New("groomerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("groomerservice client: invalid response")
)
