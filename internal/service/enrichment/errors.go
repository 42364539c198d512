package enrichment

import "errors"

var (
	// ErrResolveFailed возвращается, когда не удалось получить атрибуты
	// хотя бы одного грумера из пачки
	ErrResolveFailed = errors.New("enrichment: failed to resolve groomer attributes")
)
