package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*]`)
)

// extractFirstJSON находит первый JSON-объект внутри свободного текста ответа
// модели (вокруг объекта могут быть пояснения, markdown-ограждения и т.п.)
func extractFirstJSON(text string) (map[string]interface{}, error) {
	candidate, ok := firstJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in model response")
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
		return parsed, nil
	}

	// attempt to strip trailing commas that often break JSON
	cleaned := trailingCommaObject.ReplaceAllString(candidate, "}")
	cleaned = trailingCommaArray.ReplaceAllString(cleaned, "]")
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON candidate: %w", err)
	}
	return parsed, nil
}

// firstJSONObject сканирует текст от первой '{' до парной '}', отслеживая
// глубину скобок и строковые литералы (кавычки, экранирование)
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	// Скобки не сбалансированы (обрезанный ответ) - жадный срез до последней '}'
	if end := strings.LastIndexByte(text, '}'); end > start {
		return text[start : end+1], true
	}
	return "", false
}
