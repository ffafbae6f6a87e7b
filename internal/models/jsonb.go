package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string persisted as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSONB(value, l)
}

// ScoreMap maps a model or feature name to a numeric value, persisted as JSONB.
type ScoreMap map[string]float64

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		m = ScoreMap{}
	}
	return json.Marshal(m)
}

func (m *ScoreMap) Scan(value interface{}) error {
	return scanJSONB(value, m)
}

// EmbeddingMap maps a model name to its embedding vector, persisted as JSONB.
type EmbeddingMap map[string][]float64

func (m EmbeddingMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *EmbeddingMap) Scan(value interface{}) error {
	return scanJSONB(value, m)
}

func scanJSONB(value, target interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type: %T", value)
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, target)
}
