package pure_utils

import "encoding/json"

// Null distinguishes a JSON field that was omitted (Set is false) from one explicitly
// set to null (Set is true, Valid is false).
type Null[T any] struct {
	value T
	Valid bool
	Set   bool
}

func NullFrom[T any](v T) Null[T] {
	return Null[T]{value: v, Valid: true, Set: true}
}

func (n Null[T]) Value() T {
	return n.value
}

func (n Null[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.value
	return &v
}

func (n *Null[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.value, n.Valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &n.value); err != nil {
		var zero T
		n.value, n.Valid = zero, false
		return err
	}
	n.Valid = true
	return nil
}

func (n Null[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}
