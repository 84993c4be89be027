package models

import "encoding/json"

// OptionalString is a request field that distinguishes "absent" from an
// explicit JSON null. Set reports whether the field appeared in the payload;
// Valid reports whether it carried a non-null value. An explicit null clears
// the column on partial updates instead of being skipped.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON records presence before decoding the value
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON mirrors UnmarshalJSON so request structs round-trip.
// An unset field is dropped by the omitzero tag via IsZero.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsZero reports whether the field was absent from the payload
func (o OptionalString) IsZero() bool {
	return !o.Set
}

// Ptr returns the value as a nullable SQL argument: nil for an explicit null
func (o OptionalString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	value := o.Value
	return &value
}
