// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides a value type that distinguishes "not set" from the zero value.
package vartype

import (
	"fmt"
	"math"
)

// VarFloat64 is a type alias for Variable[float64], representing a float64 value with initialization tracking.
type VarFloat64 = Variable[float64]

// Variable represents a generic type wrapper that holds a value and tracks its initialization state.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable creates and returns a new Variable instance initialized with the provided value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// FromPointer returns a set Variable holding *ptr, or an unset Variable if ptr is nil.
func FromPointer[T any](ptr *T) Variable[T] {
	if ptr == nil {
		return Variable[T]{}
	}
	return NewVariable(*ptr)
}

// FloatOrMissing returns a set VarFloat64 unless val is NaN.
func FloatOrMissing(val float64) VarFloat64 {
	if math.IsNaN(val) {
		return VarFloat64{}
	}
	return NewVariable(val)
}

// Reset clears the value of the Variable and marks it as uninitialized.
func (v *Variable[T]) Reset() {
	var newVal T
	v.value = newVal
	v.isset = false
}

// Value retrieves the current value stored in the Variable.
func (v Variable[T]) Value() T {
	return v.value
}

// Set assigns the provided value to the Variable and marks it as initialized.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet returns true if the Variable has been initialized with a value, otherwise false.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

// String returns a string representation of the Variable. If uninitialized, it returns "missing".
func (v Variable[T]) String() string {
	if !v.isset {
		return "missing"
	}
	return fmt.Sprint(v.value)
}
