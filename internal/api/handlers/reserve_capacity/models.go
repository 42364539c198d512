package reserve_capacity

import (
	"fmt"
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	reserveCapacity "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/reserve_capacity"
)

// ReserveCapacityRequest HTTP request model
type ReserveCapacityRequest struct {
	GroomerID string `json:"groomerId"`
	StartDate string `json:"startDate"` // "2026-09-01"
	EndDate   string `json:"endDate"`
	Units     int    `json:"units"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveCapacityRequest) ToUseCaseRequest() (*reserveCapacity.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	return &reserveCapacity.Request{
		GroomerID: r.GroomerID,
		StartDate: startDate,
		EndDate:   endDate,
		Units:     r.Units,
	}, nil
}
