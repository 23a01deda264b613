package models

import (
	"bytes"
	"encoding/json"
)

// Nullable is a PATCH field that tells an absent key apart from an explicit null.
// Present is false when the key is missing; Value is nil when it was null.
type Nullable[T any] struct {
	Present bool
	Value   *T
}

func Some[T any](v T) Nullable[T] { return Nullable[T]{Present: true, Value: &v} }

func Null[T any]() Nullable[T] { return Nullable[T]{Present: true} }

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
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

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}
