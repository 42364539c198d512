package create_appointment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	createAppointment "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/create_appointment"
)

// PetRequest питомец в HTTP запросе
type PetRequest struct {
	Type        string `json:"petType"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	MedicalInfo string `json:"medicalInfo"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID string       `json:"customerId"`
	GroomerID  string       `json:"groomerId"`
	StartDate  string       `json:"startDate"` // "2026-09-01"
	EndDate    string       `json:"endDate"`
	Pets       []PetRequest `json:"pets"`
	TotalPrice string       `json:"totalPrice"`
	PriceTier  string       `json:"priceTier"`
	// Платёжная ссылка из checkout-потока, опциональна
	TransactionID string `json:"transactionId"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string       `json:"id"`
	CustomerID    string       `json:"customerId"`
	GroomerID     string       `json:"groomerId"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	Status        string       `json:"status"`
	Pets          []domain.Pet `json:"pets"`
	TotalPrice    string       `json:"totalPrice"`
	PriceTier     string       `json:"priceTier"`
	TransactionID string       `json:"transactionId"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	totalPrice := decimal.Zero
	if r.TotalPrice != "" {
		totalPrice, err = decimal.NewFromString(r.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("parse total price: %w", err)
		}
	}

	pets := make([]domain.Pet, 0, len(r.Pets))
	for _, pet := range r.Pets {
		petType, err := domain.ParsePetType(pet.Type)
		if err != nil {
			return nil, fmt.Errorf("parse pet type: %w", err)
		}

		gender, err := domain.ParsePetGender(pet.Gender)
		if err != nil {
			return nil, fmt.Errorf("parse pet gender: %w", err)
		}

		pets = append(pets, domain.Pet{
			Type:        petType,
			Name:        pet.Name,
			Gender:      gender,
			Age:         pet.Age,
			MedicalInfo: pet.MedicalInfo,
		})
	}

	return &createAppointment.Request{
		CustomerID:    r.CustomerID,
		GroomerID:     r.GroomerID,
		StartDate:     startDate,
		EndDate:       endDate,
		Pets:          pets,
		TotalPrice:    totalPrice,
		PriceTier:     r.PriceTier,
		TransactionID: r.TransactionID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		GroomerID:     resp.GroomerID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Status:        resp.Status,
		Pets:          resp.Pets,
		TotalPrice:    resp.TotalPrice.String(),
		PriceTier:     resp.PriceTier,
		TransactionID: resp.TransactionID,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
