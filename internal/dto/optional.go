package dto

import "encoding/json"

// Optional distinguishes "field absent" from "field explicitly null" in a
// PATCH-style payload. Update uses it for the address ids, where an explicit
// null means detach and absence means leave untouched.
type Optional[T any] struct {
	Set   bool // field was present in the payload
	Valid bool // field was present and non-null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
