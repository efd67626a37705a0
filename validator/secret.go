package validator

import (
	"bytes"
	"errors"
	"log/slog"
)

const redacted = "[REDACTED]"

// ErrSecretEmpty is returned when a Secret is built from an empty key.
var ErrSecretEmpty = errors.New("secret cannot be empty")

// Secret is the shared HMAC key used to verify token signatures. It is
// immutable after construction. The zero value holds no key and is rejected
// by New.
type Secret struct {
	key []byte
}

// NewSecret copies key into a new Secret.
func NewSecret(key []byte) (Secret, error) {
	if len(key) == 0 {
		return Secret{}, ErrSecretEmpty
	}
	return Secret{key: bytes.Clone(key)}, nil
}

// MustNewSecret is like NewSecret but panics on an empty key.
func MustNewSecret(key []byte) Secret {
	s, err := NewSecret(key)
	if err != nil {
		panic(err)
	}
	return s
}

// IsZero reports whether the Secret holds no key.
func (s Secret) IsZero() bool {
	return len(s.key) == 0
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return "validator.Secret{" + redacted + "}"
}

// MarshalText keeps the key out of JSON, YAML and similar encoders.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// LogValue keeps the key out of slog output.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}
