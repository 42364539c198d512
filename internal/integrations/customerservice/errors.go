package customerservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	// (сетевой сбой, таймаут)
	ErrInternal = errors.New("customerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("customerservice client: invalid response")
)
