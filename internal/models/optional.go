package models

import "encoding/json"

// Optional is a request field that remembers whether it was present in the
// JSON body. An explicit null is recorded as Set and Null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Arg returns the value to bind as a query argument: nil for an
// explicit null, the value otherwise.
func (o Optional[T]) Arg() any {
	if o.Null {
		return nil
	}
	return o.Value
}
