package dto

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that remembers whether it was present in the request and
// whether it was an explicit null. It lets PATCH bodies tell "leave unchanged"
// apart from "clear".
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Null = true
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// Ptr returns nil for an explicit null and a pointer to the value otherwise.
func (f Field[T]) Ptr() *T {
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// NewField builds a present, non-null field.
func NewField[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// NullField builds a field that was explicitly sent as null.
func NullField[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}
