package identity

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в CustomerService
	ErrCustomerNotFound = errors.New("identity: customer not found")

	// ErrGroomerNotFound возвращается, когда грумер не найден в GroomerService
	ErrGroomerNotFound = errors.New("identity: groomer not found")

	// ErrInternal возвращается при сбое обращения к реестрам
	// (таймаут, транспортная ошибка, некорректный ответ)
	ErrInternal = errors.New("identity: internal error")
)
