package optional

import (
	"encoding/json"
)

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing v
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and true, or the zero value and false
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Match calls some with the contained value or none if the option is empty.
// Exactly one of the two functions is called.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.some {
		return some(o.value)
	}
	return none()
}

// Map applies f to the contained value if present
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Some(v)
	return nil
}
