package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowd-detector/internal/domain"
)

func TestNormalizeAnalysis_CrowdScoreClamping(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int
	}{
		{"in range", float64(7), 7},
		{"above range", float64(15), 10},
		{"far above range", float64(25), 10},
		{"below range", float64(-3), 1},
		{"zero", float64(0), 1},
		{"float truncates before clamping", float64(9.9), 9},
		{"integer string", "8", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalizeAnalysis(map[string]interface{}{"crowd_score": tt.input})
			require.NoError(t, err)
			require.NotNil(t, result.CrowdScore)
			assert.Equal(t, tt.expected, *result.CrowdScore)
		})
	}

	t.Run("absent stays unset", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{})
		require.NoError(t, err)
		assert.Nil(t, result.CrowdScore)
	})
}

func TestNormalizeAnalysis_DepartureType(t *testing.T) {
	tests := []struct {
		name          string
		parsed        map[string]interface{}
		expected      *string
		expectedUnset bool
	}{
		{
			name:     "valid type lowercased",
			parsed:   map[string]interface{}{"departure_type": "Flight"},
			expected: strPtr("flight"),
		},
		{
			name:     "case variant of train",
			parsed:   map[string]interface{}{"departure_type": "Train"},
			expected: strPtr("train"),
		},
		{
			name:     "unknown value forced to none",
			parsed:   map[string]interface{}{"departure_type": "airplane"},
			expected: strPtr("none"),
		},
		{
			name:     "ferry uppercase",
			parsed:   map[string]interface{}{"departure_type": "FERRY"},
			expected: strPtr("ferry"),
		},
		{
			name:     "absent with falsy screen_detected defaults to none",
			parsed:   map[string]interface{}{"screen_detected": false},
			expected: strPtr("none"),
		},
		{
			name:     "absent with absent screen_detected defaults to none",
			parsed:   map[string]interface{}{},
			expected: strPtr("none"),
		},
		{
			name:          "absent with truthy screen_detected stays unset",
			parsed:        map[string]interface{}{"screen_detected": true},
			expectedUnset: true,
		},
		{
			name:          "non-string value with truthy screen_detected stays unset",
			parsed:        map[string]interface{}{"departure_type": float64(5), "screen_detected": true},
			expectedUnset: true,
		},
		{
			name:     "empty string with falsy screen_detected defaults to none",
			parsed:   map[string]interface{}{"departure_type": ""},
			expected: strPtr("none"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalizeAnalysis(tt.parsed)
			require.NoError(t, err)
			if tt.expectedUnset {
				assert.Nil(t, result.DepartureType)
				return
			}
			require.NotNil(t, result.DepartureType)
			assert.Equal(t, *tt.expected, *result.DepartureType)
			assert.True(t, domain.IsValidDepartureType(*result.DepartureType))
		})
	}
}

func TestNormalizeAnalysis_DepartureInfo(t *testing.T) {
	t.Run("non-record entries are dropped silently", func(t *testing.T) {
		parsed := map[string]interface{}{
			"departure_info": []interface{}{
				map[string]interface{}{"flight_number": "BA117"},
				"just a string",
				float64(42),
				[]interface{}{"nested array"},
				map[string]interface{}{"destination": "Paris"},
			},
		}

		result, err := normalizeAnalysis(parsed)
		require.NoError(t, err)
		require.Len(t, result.DepartureInfo, 2)
		assert.Equal(t, "BA117", result.DepartureInfo[0]["flight_number"])
		assert.Equal(t, "Paris", result.DepartureInfo[1]["destination"])
	})

	t.Run("absent defaults to empty sequence", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{})
		require.NoError(t, err)
		assert.NotNil(t, result.DepartureInfo)
		assert.Empty(t, result.DepartureInfo)
	})

	t.Run("non-array value defaults to empty sequence", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{"departure_info": "not a list"})
		require.NoError(t, err)
		assert.Empty(t, result.DepartureInfo)
	})
}

func TestNormalizeAnalysis_FieldCoercion(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		parsed := map[string]interface{}{
			"people_count":    float64(12),
			"crowd_score":     float64(7),
			"crowd_label":     "Medium",
			"confidence":      88.5,
			"rationale":       "Moderate crowd near gates.",
			"screen_detected": true,
			"departure_type":  "Flight",
			"departure_info": []interface{}{
				map[string]interface{}{
					"flight_number":  "BA117",
					"destination":    "Paris",
					"departure_time": "14:20",
					"status":         "Boarding",
					"gate":           "12",
				},
			},
		}

		result, err := normalizeAnalysis(parsed)
		require.NoError(t, err)
		require.NotNil(t, result.PeopleCount)
		assert.Equal(t, 12, *result.PeopleCount)
		require.NotNil(t, result.CrowdScore)
		assert.Equal(t, 7, *result.CrowdScore)
		require.NotNil(t, result.CrowdLabel)
		assert.Equal(t, "Medium", *result.CrowdLabel)
		require.NotNil(t, result.Confidence)
		assert.Equal(t, 88.5, *result.Confidence)
		assert.Equal(t, "Moderate crowd near gates.", result.Rationale)
		require.NotNil(t, result.ScreenDetected)
		assert.True(t, *result.ScreenDetected)
		require.NotNil(t, result.DepartureType)
		assert.Equal(t, "flight", *result.DepartureType)
		assert.Len(t, result.DepartureInfo, 1)
	})

	t.Run("absence is preserved as unknown", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{})
		require.NoError(t, err)
		assert.Nil(t, result.PeopleCount)
		assert.Nil(t, result.CrowdScore)
		assert.Nil(t, result.CrowdLabel)
		assert.Nil(t, result.Confidence)
		assert.Nil(t, result.ScreenDetected)
		assert.Equal(t, "", result.Rationale)
	})

	t.Run("explicit null is treated as absence", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{
			"people_count": nil,
			"crowd_score":  nil,
		})
		require.NoError(t, err)
		assert.Nil(t, result.PeopleCount)
		assert.Nil(t, result.CrowdScore)
	})

	t.Run("confidence from numeric string", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{"confidence": "88.5"})
		require.NoError(t, err)
		require.NotNil(t, result.Confidence)
		assert.Equal(t, 88.5, *result.Confidence)
	})

	t.Run("confidence is not clamped", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{"confidence": float64(150)})
		require.NoError(t, err)
		require.NotNil(t, result.Confidence)
		assert.Equal(t, float64(150), *result.Confidence)
	})

	t.Run("screen_detected truthiness", func(t *testing.T) {
		tests := []struct {
			name     string
			input    interface{}
			expected bool
		}{
			{"bool true", true, true},
			{"bool false", false, false},
			{"non-empty string", "yes", true},
			{"empty string", "", false},
			{"non-zero number", float64(1), true},
			{"zero number", float64(0), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := normalizeAnalysis(map[string]interface{}{"screen_detected": tt.input})
				require.NoError(t, err)
				require.NotNil(t, result.ScreenDetected)
				assert.Equal(t, tt.expected, *result.ScreenDetected)
			})
		}
	})

	t.Run("uncoercible people_count fails", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{
			"people_count": []interface{}{float64(1)},
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("non-numeric string people_count fails", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{"people_count": "a dozen"})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("non-string crowd_label fails", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{"crowd_label": float64(5)})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("non-string rationale fails", func(t *testing.T) {
		result, err := normalizeAnalysis(map[string]interface{}{"rationale": float64(1)})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

// Helper function to create string pointers
func strPtr(s string) *string {
	return &s
}
