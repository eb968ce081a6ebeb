package domain

// Допустимые значения departure_type
const (
	DepartureTypeFlight = "flight"
	DepartureTypeTrain  = "train"
	DepartureTypeBus    = "bus"
	DepartureTypeSubway = "subway"
	DepartureTypeFerry  = "ferry"
	DepartureTypeNone   = "none"
)

var validDepartureTypes = map[string]struct{}{
	DepartureTypeFlight: {},
	DepartureTypeTrain:  {},
	DepartureTypeBus:    {},
	DepartureTypeSubway: {},
	DepartureTypeFerry:  {},
	DepartureTypeNone:   {},
}

// IsValidDepartureType - проверка принадлежности значения к закрытому набору типов табло
func IsValidDepartureType(t string) bool {
	_, ok := validDepartureTypes[t]
	return ok
}

// DepartureEntry - одна строка табло отправлений. Набор полей открытый:
// номер рейса/поезда/маршрута, направление, время отправления, статус, гейт/платформа.
type DepartureEntry map[string]interface{}

// AnalysisResult - результат анализа изображения толпы и табло отправлений.
// Nullable-поля сериализуются как null, если модель их не вернула.
type AnalysisResult struct {
	PeopleCount    *int             `json:"people_count"`
	CrowdScore     *int             `json:"crowd_score"` // 1-10
	CrowdLabel     *string          `json:"crowd_label"` // e.g., "Low", "Medium", "High"
	Confidence     *float64         `json:"confidence"`  // 0-100
	Rationale      string           `json:"rationale"`
	ScreenDetected *bool            `json:"screen_detected"`
	DepartureType  *string          `json:"departure_type"`
	DepartureInfo  []DepartureEntry `json:"departure_info"`
}
