package entity

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field that distinguishes an absent key from an explicit null.
// Set reports whether the field was supplied; a nil Value with Set means "clear".
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NewNullable returns a supplied field holding v. A nil v clears the field.
func NewNullable[T any](v *T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Clear reports whether the field was explicitly set to null.
func (n Nullable[T]) Clear() bool {
	return n.Set && n.Value == nil
}

// UnmarshalJSON is only invoked when the key is present in the document.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}

// MarshalJSON encodes the value or null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}
