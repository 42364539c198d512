package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrEncodePets возвращается при ошибке сериализации питомцев в JSONB
	ErrEncodePets = errors.New("appointment.repository: failed to encode pets")

	// ErrDecodePets возвращается при ошибке десериализации питомцев из JSONB
	ErrDecodePets = errors.New("appointment.repository: failed to decode pets")
)
