// Package optional provides a presence-aware value for partial updates.
//
// A Value distinguishes three states that a plain pointer cannot:
// absent from the request, present with an explicit null, and present
// with a value.
package optional

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
)

type Value[T any] struct {
	set   bool
	null  bool
	value T
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{set: true, value: v}
}

// Null returns a present value that was explicitly cleared.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the input at all.
func (v Value[T]) IsSet() bool { return v.set }

// IsNull reports whether the field appeared as an explicit null.
func (v Value[T]) IsNull() bool { return v.set && v.null }

// Get returns the value and whether it is present and non-null.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set && !v.null
}

// Ptr returns nil for null, otherwise a pointer to a copy of the value.
// It must only be called on a set value.
func (v Value[T]) Ptr() *T {
	if v.null {
		return nil
	}
	out := v.value
	return &out
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.null = true
		var zero T
		v.value = zero
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalXML is only invoked when the element exists, so any element
// counts as a present value. XML has no null literal.
func (v *Value[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v.set = true
	v.null = false
	return d.DecodeElement(&v.value, &start)
}

func (v Value[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if !v.set || v.null {
		return nil
	}
	return e.EncodeElement(v.value, start)
}
