package models

import (
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDatesRequest запрос на перенос дат записи
type UpdateDatesRequest struct {
	StartDate string `json:"startDate"` // "2026-09-01"
	EndDate   string `json:"endDate"`
}

// MonthlyAppointmentsRequest запрос записей грумера за месяц
type MonthlyAppointmentsRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// StayedCustomerRequest запрос на проверку завершённого пребывания
type StayedCustomerRequest struct {
	CustomerID string `json:"customerId"`
	GroomerID  string `json:"groomerId"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          string       `json:"id"`
	CustomerID  string       `json:"customerId"`
	GroomerID   string       `json:"groomerId"`
	StartDate   string       `json:"startDate"` // "2026-09-01"
	EndDate     string       `json:"endDate"`
	Status      string       `json:"status"`
	Pets        []domain.Pet `json:"pets"`
	TotalPrice  string       `json:"totalPrice"`
	PriceTier   string       `json:"priceTier"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// TransactionRefResponse ответ с платёжной ссылкой записи
type TransactionRefResponse struct {
	AppointmentID string `json:"appointmentId"`
	TransactionID string `json:"transactionId"`
}

// CustomerAppointmentResponse запись клиента, обогащённая карточкой грумера
type CustomerAppointmentResponse struct {
	ID                string   `json:"id"`
	GroomerID         string   `json:"groomerId"`
	GroomerName       string   `json:"groomerName"`
	GroomerPictureURL string   `json:"groomerPictureUrl"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	Status            string   `json:"status"`
	PetNames          []string `json:"petNames"`
	TotalPrice        string   `json:"totalPrice"`
}

// CustomerAppointmentListResponse список записей клиента
type CustomerAppointmentListResponse struct {
	Appointments []CustomerAppointmentResponse `json:"appointments"`
}

// StayedCustomerResponse результат проверки завершённого пребывания
type StayedCustomerResponse struct {
	HasStayed bool `json:"hasStayed"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	pets := a.Pets
	if pets == nil {
		pets = []domain.Pet{}
	}

	return &AppointmentResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		GroomerID:  a.GroomerID,
		StartDate:  a.StartDate.Format(domain.DateFormat),
		EndDate:    a.EndDate.Format(domain.DateFormat),
		Status:     string(a.Status),
		Pets:       pets,
		TotalPrice: a.TotalPrice.String(),
		PriceTier:  a.PriceTier,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if item := FromDomainAppointment(appointment); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// FromEnrichedAppointments собирает записи клиента вместе с карточками грумеров
func FromEnrichedAppointments(appointments []*domain.Appointment, groomers map[string]*groomerservice.Groomer) *CustomerAppointmentListResponse {
	resp := &CustomerAppointmentListResponse{
		Appointments: make([]CustomerAppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if appointment == nil {
			continue
		}

		item := CustomerAppointmentResponse{
			ID:         appointment.ID,
			GroomerID:  appointment.GroomerID,
			StartDate:  appointment.StartDate.Format(domain.DateFormat),
			EndDate:    appointment.EndDate.Format(domain.DateFormat),
			Status:     string(appointment.Status),
			PetNames:   appointment.PetNames(),
			TotalPrice: appointment.TotalPrice.String(),
		}

		if groomer, ok := groomers[appointment.GroomerID]; ok && groomer != nil {
			item.GroomerName = groomer.Name
			item.GroomerPictureURL = groomer.PictureURL
		}

		resp.Appointments = append(resp.Appointments, item)
	}

	return resp
}
