package domain

import "fmt"

// PetType вид питомца
type PetType string

const (
	PetTypeBirds       PetType = "Birds"
	PetTypeHamsters    PetType = "Hamsters"
	PetTypeCats        PetType = "Cats"
	PetTypeDogs        PetType = "Dogs"
	PetTypeRabbits     PetType = "Rabbits"
	PetTypeGuineaPigs  PetType = "GuineaPigs"
	PetTypeChinchillas PetType = "Chinchillas"
	PetTypeMice        PetType = "Mice"
	PetTypeFishes      PetType = "Fishes"
)

// petTypeFromWire явная таблица соответствия внешнего представления видам питомцев
var petTypeFromWire = map[string]PetType{
	"Birds":       PetTypeBirds,
	"Hamsters":    PetTypeHamsters,
	"Cats":        PetTypeCats,
	"Dogs":        PetTypeDogs,
	"Rabbits":     PetTypeRabbits,
	"GuineaPigs":  PetTypeGuineaPigs,
	"Chinchillas": PetTypeChinchillas,
	"Mice":        PetTypeMice,
	"Fishes":      PetTypeFishes,
}

// ParsePetType парсит вид питомца из внешнего представления
func ParsePetType(s string) (PetType, error) {
	petType, ok := petTypeFromWire[s]
	if !ok {
		return "", fmt.Errorf("unknown pet type %q", s)
	}
	return petType, nil
}

// PetGender пол питомца
type PetGender string

const (
	PetGenderMale        PetGender = "male"
	PetGenderFemale      PetGender = "female"
	PetGenderUnspecified PetGender = "unspecified"
)

// petGenderFromWire явная таблица соответствия внешнего представления полу питомца
var petGenderFromWire = map[string]PetGender{
	"male":        PetGenderMale,
	"female":      PetGenderFemale,
	"unspecified": PetGenderUnspecified,
}

// ParsePetGender парсит пол питомца из внешнего представления
func ParsePetGender(s string) (PetGender, error) {
	gender, ok := petGenderFromWire[s]
	if !ok {
		return "", fmt.Errorf("unknown pet gender %q", s)
	}
	return gender, nil
}

// Pet питомец в составе записи
type Pet struct {
	Type        PetType   `json:"petType"`
	Name        string    `json:"name"`
	Gender      PetGender `json:"gender"`
	Age         int       `json:"age"` // Неотрицательный возраст в годах
	MedicalInfo string    `json:"medicalInfo"`
}

// Validate проверяет корректность данных питомца
func (p *Pet) Validate() error {
	if _, err := ParsePetType(string(p.Type)); err != nil {
		return err
	}
	if _, err := ParsePetGender(string(p.Gender)); err != nil {
		return err
	}
	if p.Name == "" {
		return fmt.Errorf("pet name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("pet age must be non-negative")
	}
	if len(p.MedicalInfo) > MaxMedicalInfoLength {
		return fmt.Errorf("pet medical info exceeds %d characters", MaxMedicalInfoLength)
	}
	return nil
}
