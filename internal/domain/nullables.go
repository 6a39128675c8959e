package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NullableString represents a string that can be null
type NullableString struct {
	String string
	IsNull bool
}

// StringValue returns a non-null NullableString
func StringValue(s string) *NullableString {
	return &NullableString{String: s}
}

// Value implements the driver.Valuer interface for database/sql
func (ns NullableString) Value() (driver.Value, error) {
	if ns.IsNull {
		return nil, nil
	}
	return ns.String, nil
}

// Scan implements the sql.Scanner interface for database/sql
func (ns *NullableString) Scan(value interface{}) error {
	if value == nil {
		ns.String = ""
		ns.IsNull = true
		return nil
	}

	switch v := value.(type) {
	case string:
		ns.String = v
		ns.IsNull = false
		return nil
	case []byte:
		ns.String = string(v)
		ns.IsNull = false
		return nil
	default:
		return fmt.Errorf("cannot scan %T into NullableString", value)
	}
}

// MarshalJSON implements json.Marshaler
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.IsNull {
		return []byte("null"), nil
	}
	return json.Marshal(ns.String)
}

// UnmarshalJSON implements json.Unmarshaler
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ns.String = ""
		ns.IsNull = true
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	ns.String = str
	ns.IsNull = false
	return nil
}

// NullableFloat64 represents a float64 that can be null
type NullableFloat64 struct {
	Float64 float64
	IsNull  bool
}

// Value implements the driver.Valuer interface for database/sql
func (nf NullableFloat64) Value() (driver.Value, error) {
	if nf.IsNull {
		return nil, nil
	}
	return nf.Float64, nil
}

// Scan implements the sql.Scanner interface for database/sql
func (nf *NullableFloat64) Scan(value interface{}) error {
	if value == nil {
		nf.Float64 = 0
		nf.IsNull = true
		return nil
	}

	switch v := value.(type) {
	case float64:
		nf.Float64 = v
	case int64:
		nf.Float64 = float64(v)
	default:
		return fmt.Errorf("cannot scan %T into NullableFloat64", value)
	}
	nf.IsNull = false
	return nil
}

// MarshalJSON implements json.Marshaler
func (nf NullableFloat64) MarshalJSON() ([]byte, error) {
	if nf.IsNull {
		return []byte("null"), nil
	}
	return json.Marshal(nf.Float64)
}

// UnmarshalJSON implements json.Unmarshaler
func (nf *NullableFloat64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		nf.Float64 = 0
		nf.IsNull = true
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	nf.Float64 = f
	nf.IsNull = false
	return nil
}

// NullableTime represents a time.Time that can be null
type NullableTime struct {
	Time   time.Time
	IsNull bool
}

// TimeValue returns a non-null NullableTime
func TimeValue(t time.Time) *NullableTime {
	return &NullableTime{Time: t}
}

// Value implements the driver.Valuer interface for database/sql
func (nt NullableTime) Value() (driver.Value, error) {
	if nt.IsNull {
		return nil, nil
	}
	return nt.Time, nil
}

// Scan implements the sql.Scanner interface for database/sql
func (nt *NullableTime) Scan(value interface{}) error {
	if value == nil {
		nt.Time = time.Time{}
		nt.IsNull = true
		return nil
	}

	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into NullableTime", value)
	}
	nt.Time = t
	nt.IsNull = false
	return nil
}

// MarshalJSON implements json.Marshaler
func (nt NullableTime) MarshalJSON() ([]byte, error) {
	if nt.IsNull {
		return []byte("null"), nil
	}
	return json.Marshal(nt.Time)
}

// UnmarshalJSON implements json.Unmarshaler
func (nt *NullableTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		nt.Time = time.Time{}
		nt.IsNull = true
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	nt.Time = t
	nt.IsNull = false
	return nil
}
