// Package optional provides Value, a slot holding at most one item. The stream
// combinators keep one per input for the item waiting to be compared.
package optional

import "fmt"

// Value holds an item or nothing. The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some returns a Value holding value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the held item and whether there is one.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the held item. An empty Value here is a bug in the caller.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("optional: GetOrPanic on an empty value")
	}

	return o.value
}

// Set stores value, replacing whatever was held.
func (o *Value[T]) Set(value T) {
	o.value = value
	o.isSet = true
}

// Take empties the slot and returns what it held. It panics when already empty.
func (o *Value[T]) Take() T {
	value := o.GetOrPanic()
	o.Clear()

	return value
}

// Clear empties the slot.
func (o *Value[T]) Clear() {
	*o = Value[T]{}
}

func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
