package groomerservice

// Groomer карточка грумера из GroomerService
type Groomer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PictureURL string `json:"pictureUrl"`
	// Capacity заявленная вместимость: максимум питомцев на один календарный день
	Capacity int `json:"capacity"`
}

// ErrorResponse модель ошибки от GroomerService
type ErrorResponse struct {
	Message string `json:"message"`
}
