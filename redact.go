package redact

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
)

// A Policy decides the placeholder text emitted in place of a wrapped
// value. Implementations must not include the value itself in the
// returned text. Policies are zero-size marker types so that a
// [Value] costs nothing beyond the value it wraps.
type Policy[T any] interface {
	Redact(v T) string
}

// Redactor is implemented by types that can print themselves with
// sensitive content removed. [Value] implements it, and Scrubber
// hooks replace any field value implementing it by its Redact result.
type Redactor interface {
	Redact() string
}

// A Value wraps a single value of type T so that every formatting and
// encoding path emits the placeholder chosen by policy P instead of
// the value. The value itself stays one method call away through
// [Value.Get] and [Value.Ptr]; the Unmarshal methods decode into it.
//
// The zero Value wraps the zero value of T and formats like any other.
// A Value is comparable exactly when T is, so it can be a map key;
// wrappers of the same T under different policies compare with [Equal]
// and [Compare].
//
// Formatting is only intercepted when fmt can see the wrapper's
// methods. A Value sitting in an unexported struct field is printed by
// fmt through bare reflection, like any Go value there. Register such
// secrets with a [Scrubber] as the second line of defense.
type Value[T any, P Policy[T]] struct {
	v T
}

// Secret is a Value redacted under the default [TypeInfo] policy, which
// names the wrapped type and nothing else.
type Secret[T any] = Value[T, TypeInfo[T]]

// New wraps v under the default [TypeInfo] policy.
func New[T any](v T) Secret[T] {
	return Secret[T]{v: v}
}

// Wrap wraps v under policy P. The value type is inferred from the
// argument, so only the policy is spelled out:
//
//	token := redact.Wrap[redact.Hidden[string]]("hunter2")
func Wrap[P Policy[T], T any](v T) Value[T, P] {
	return Value[T, P]{v: v}
}

// Get returns the wrapped value.
func (v Value[T, P]) Get() T {
	return v.v
}

// Ptr returns a pointer to the wrapped value, for reading or mutating
// it in place.
func (v *Value[T, P]) Ptr() *T {
	return &v.v
}

// Set replaces the wrapped value.
func (v *Value[T, P]) Set(nv T) {
	v.v = nv
}

// Take moves the wrapped value out and leaves the zero value of T
// behind, so the wrapper no longer holds the secret.
func (v *Value[T, P]) Take() T {
	var zero T
	out := v.v
	v.v = zero
	return out
}

// Redact returns the placeholder for the wrapped value under policy P.
func (v Value[T, P]) Redact() string {
	var p P
	return p.Redact(v.v)
}

// String implements [fmt.Stringer] by returning the placeholder.
func (v Value[T, P]) String() string {
	return v.Redact()
}

// GoString implements [fmt.GoStringer] so that %#v also emits the
// placeholder.
func (v Value[T, P]) GoString() string {
	return v.Redact()
}

// Format implements [fmt.Formatter] for every verb. Without it, verbs
// outside the Stringer set (%d, %x and so on) would fall back to
// reflection over the wrapper's field and print the value.
func (v Value[T, P]) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, v.Redact())
}

// LogValue implements [slog.LogValuer]. slog handlers resolve the
// wrapper to its placeholder before any attr rewriting runs.
func (v Value[T, P]) LogValue() slog.Value {
	return slog.StringValue(v.Redact())
}

// Equal reports whether a and b wrap the same value. The policies play
// no part in the comparison, so wrappers under different policies can
// be compared.
func Equal[T comparable, P1 Policy[T], P2 Policy[T]](a Value[T, P1], b Value[T, P2]) bool {
	return a.Get() == b.Get()
}

// Compare orders a and b by their wrapped values, returning the usual
// -1, 0 or +1. As with [Equal], the policies play no part.
func Compare[T cmp.Ordered, P1 Policy[T], P2 Policy[T]](a Value[T, P1], b Value[T, P2]) int {
	return cmp.Compare(a.Get(), b.Get())
}

var (
	_ fmt.Stringer   = Secret[string]{}
	_ fmt.GoStringer = Secret[string]{}
	_ fmt.Formatter  = Secret[string]{}
	_ slog.LogValuer = Secret[string]{}
	_ Redactor       = Secret[string]{}
)
