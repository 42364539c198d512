package create_appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Диапазон дат проверяется до любых обращений к внешним сервисам
func validateRequest(req *Request) error {
	if err := uuid.Validate(req.CustomerID); err != nil {
		return fmt.Errorf("%w: customerId must be a valid UUID", ErrInvalidInput)
	}

	if err := uuid.Validate(req.GroomerID); err != nil {
		return fmt.Errorf("%w: groomerId must be a valid UUID", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateRange
	}

	if err := validatePets(req.Pets); err != nil {
		return err
	}

	if req.TotalPrice.IsNegative() {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	return nil
}

// validatePets валидирует список питомцев
func validatePets(pets []domain.Pet) error {
	if len(pets) == 0 {
		return fmt.Errorf("%w: at least one pet is required", ErrInvalidInput)
	}

	if len(pets) > domain.MaxPetsPerAppointment {
		return fmt.Errorf("%w: at most %d pets per appointment", ErrInvalidInput, domain.MaxPetsPerAppointment)
	}

	for i, pet := range pets {
		if err := pet.Validate(); err != nil {
			return fmt.Errorf("%w: pet #%d: %v", ErrInvalidInput, i+1, err)
		}
	}

	return nil
}
