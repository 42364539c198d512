package domain

// Default configuration values
const (
	DefaultCapacityWindowDays = 30
)

// Business validation constants
const (
	MinRequestedUnits     = 1
	MaxCapacityWindowDays = 90
	MaxMedicalInfoLength  = 500
	MaxPetsPerAppointment = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
