package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"reflect"
	"strings"
	"unicode/utf8"
)

// TypeInfo is the default policy. The placeholder names the static
// type of the wrapped value and nothing else, e.g. "<redacted string>",
// so log lines stay diagnosable without exposing content. Two wrappers
// of the same type always produce the same placeholder.
type TypeInfo[T any] struct{}

func (TypeInfo[T]) Redact(T) string {
	return "<redacted " + typeName[T]() + ">"
}

// Hidden emits "..." for every type and value, revealing nothing at
// all, not even what kind of thing is being hidden.
type Hidden[T any] struct{}

func (Hidden[T]) Redact(T) string {
	return "..."
}

// Masked emits one '*' per rune of a string value, so operators can
// eyeball that a credential was present and roughly how long it was.
// An empty value stays empty. The length still leaks; use [Hidden] or
// [TypeInfo] when it must not.
type Masked[T ~string] struct{}

func (Masked[T]) Redact(v T) string {
	return strings.Repeat("*", utf8.RuneCountInString(string(v)))
}

// Digest emits "sha256:" and the first eight bytes of the value's
// SHA-256 digest in hex. The digest is stable, so log lines about the
// same secret can be correlated without revealing it.
type Digest[T ~string | ~[]byte] struct{}

func (Digest[T]) Redact(v T) string {
	sum := sha256.Sum256([]byte(v))
	return "sha256:" + hex.EncodeToString(sum[:8])
}

// typeName reports T's name as reflect renders it, without needing a
// value of T.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
