package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDepartureType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"flight", DepartureTypeFlight, true},
		{"train", DepartureTypeTrain, true},
		{"bus", DepartureTypeBus, true},
		{"subway", DepartureTypeSubway, true},
		{"ferry", DepartureTypeFerry, true},
		{"none", DepartureTypeNone, true},
		{"arbitrary string", "airplane", false},
		{"wrong case", "Flight", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidDepartureType(tt.input))
		})
	}
}

func TestAnalysisResult_JSONShape(t *testing.T) {
	// Поля без значения должны сериализоваться как null, а не пропадать
	data, err := json.Marshal(&AnalysisResult{DepartureInfo: []DepartureEntry{}})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, field := range []string{
		"people_count", "crowd_score", "crowd_label", "confidence",
		"rationale", "screen_detected", "departure_type", "departure_info",
	} {
		assert.Contains(t, raw, field)
	}
	assert.Equal(t, "null", string(raw["people_count"]))
	assert.Equal(t, "[]", string(raw["departure_info"]))
}
