package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePetType(t *testing.T) {
	for _, wire := range []string{
		"Birds", "Hamsters", "Cats", "Dogs", "Rabbits",
		"GuineaPigs", "Chinchillas", "Mice", "Fishes",
	} {
		petType, err := ParsePetType(wire)
		require.NoError(t, err, wire)
		assert.Equal(t, PetType(wire), petType)
	}

	_, err := ParsePetType("Dragons")
	require.Error(t, err)

	_, err = ParsePetType("dogs")
	require.Error(t, err)
}

func TestParsePetGender(t *testing.T) {
	for _, wire := range []string{"male", "female", "unspecified"} {
		gender, err := ParsePetGender(wire)
		require.NoError(t, err, wire)
		assert.Equal(t, PetGender(wire), gender)
	}

	_, err := ParsePetGender("other")
	require.Error(t, err)
}

func TestPetValidate(t *testing.T) {
	valid := Pet{Type: PetTypeCats, Name: "Мурка", Gender: PetGenderFemale, Age: 3}
	require.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	require.Error(t, noName.Validate())

	negativeAge := valid
	negativeAge.Age = -1
	require.Error(t, negativeAge.Validate())

	badType := valid
	badType.Type = "Dinosaurs"
	require.Error(t, badType.Validate())

	longMedicalInfo := valid
	longMedicalInfo.MedicalInfo = strings.Repeat("a", MaxMedicalInfoLength+1)
	require.Error(t, longMedicalInfo.Validate())
}
