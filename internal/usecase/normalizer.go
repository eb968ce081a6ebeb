package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crowd-detector/internal/domain"
)

// normalizeAnalysis приводит распарсенный JSON модели к AnalysisResult:
// покоёрцивает типы полей, ограничивает crowd_score диапазоном [1,10],
// нормализует departure_type к закрытому набору значений.
func normalizeAnalysis(parsed map[string]interface{}) (*domain.AnalysisResult, error) {
	result := &domain.AnalysisResult{
		DepartureInfo: []domain.DepartureEntry{},
	}

	if v := parsed["people_count"]; v != nil {
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("people_count: %w", err)
		}
		result.PeopleCount = &n
	}

	if v := parsed["crowd_score"]; v != nil {
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("crowd_score: %w", err)
		}
		if n < 1 {
			n = 1
		}
		if n > 10 {
			n = 10
		}
		result.CrowdScore = &n
	}

	if v := parsed["crowd_label"]; v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("crowd_label: expected string, got %T", v)
		}
		result.CrowdLabel = &s
	}

	if v := parsed["confidence"]; v != nil {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("confidence: %w", err)
		}
		result.Confidence = &f
	}

	if v := parsed["rationale"]; v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("rationale: expected string, got %T", v)
		}
		result.Rationale = s
	}

	screenDetected := false
	if v := parsed["screen_detected"]; v != nil {
		b := toBool(v)
		result.ScreenDetected = &b
		screenDetected = b
	}

	if s, ok := parsed["departure_type"].(string); ok && s != "" {
		lowered := strings.ToLower(s)
		if !domain.IsValidDepartureType(lowered) {
			lowered = domain.DepartureTypeNone
		}
		result.DepartureType = &lowered
	} else if !screenDetected {
		none := domain.DepartureTypeNone
		result.DepartureType = &none
	}
	// экран обнаружен, но тип не указан: поле остаётся пустым (null)

	if entries, ok := parsed["departure_info"].([]interface{}); ok {
		for _, entry := range entries {
			// Ensure each entry is a key/value record
			if record, ok := entry.(map[string]interface{}); ok {
				result.DepartureInfo = append(result.DepartureInfo, domain.DepartureEntry(record))
			}
		}
	}

	return result, nil
}

func toInt(v interface{}) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to int", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to float", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to float", v)
	}
}

// toBool повторяет семантику истинности JSON-значений: непустые строки,
// ненулевые числа и непустые контейнеры считаются true
func toBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return v != nil
	}
}
