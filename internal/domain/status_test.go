package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   Status
		requested Status
		want      bool
	}{
		{"awaiting to awaiting", StatusAwaiting, StatusAwaiting, true},
		{"awaiting to staying", StatusAwaiting, StatusStaying, true},
		{"awaiting to left", StatusAwaiting, StatusLeft, true},
		{"staying to awaiting", StatusStaying, StatusAwaiting, false},
		{"staying to staying", StatusStaying, StatusStaying, true},
		{"staying to left", StatusStaying, StatusLeft, true},
		{"left to awaiting", StatusLeft, StatusAwaiting, true},
		{"left to staying", StatusLeft, StatusStaying, false},
		{"left to left", StatusLeft, StatusLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.current, tt.requested))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, wire := range []string{"awaiting", "staying", "left"} {
		status, err := ParseStatus(wire)
		require.NoError(t, err)
		assert.Equal(t, Status(wire), status)
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseStatus("cancelled")
	require.Error(t, err)

	// Регистр имеет значение: множество статусов замкнуто
	_, err = ParseStatus("Awaiting")
	require.Error(t, err)

	_, err = ParseStatus("")
	require.Error(t, err)
}
