package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
)

// MapOfAny is persisted as JSON in the database
type MapOfAny map[string]any

// Scan implements the sql.Scanner interface
func (m *MapOfAny) Scan(val interface{}) error {

	var data []byte

	if b, ok := val.([]byte); ok {
		// the sql driver reuses the same byte slice across queries,
		// so the bytes must be cloned before unmarshalling
		data = bytes.Clone(b)
	} else if s, ok := val.(string); ok {
		data = []byte(s)
	} else if val == nil {
		return nil
	}

	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface
func (m MapOfAny) Value() (driver.Value, error) {
	return json.Marshal(m)
}
