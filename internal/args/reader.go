// Package args extracts values from command-line tokens shaped as
// <key>=<value>, where key is a single character.
package args

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrMissing is returned when no token carries the requested key.
	ErrMissing = errors.New("argument not found")
	// ErrRepeated is returned when more than one token carries the key.
	ErrRepeated = errors.New("there can not be repeated arguments")
	// ErrEmptyValue is returned for tokens such as "w=" with nothing after '='.
	ErrEmptyValue = errors.New("argument has no value")
	// ErrNotInteger is returned by Int when the value is not a base-10 integer.
	ErrNotInteger = errors.New("argument value has to be an integer")
)

// Error is a failed lookup. It prints the user-facing diagnostic and matches
// its sentinel (ErrMissing, ErrRepeated, ...) with errors.Is.
type Error struct {
	Key   byte
	Value string
	kind  error
}

// Error returns the diagnostic shown to the user.
func (e *Error) Error() string {
	switch e.kind {
	case ErrMissing:
		return fmt.Sprintf("there was no argument for %c", e.Key)
	case ErrRepeated:
		return fmt.Sprintf("there can not be repeated arguments, %c given more than once", e.Key)
	case ErrEmptyValue:
		return fmt.Sprintf("there was no value for %c", e.Key)
	case ErrNotInteger:
		return fmt.Sprintf("the value of %c has to be an integer, %q given", e.Key, e.Value)
	}
	return e.kind.Error()
}

// Unwrap returns the sentinel describing the failure.
func (e *Error) Unwrap() error { return e.kind }

// Cause lets errors.Cause reach the sentinel.
func (e *Error) Cause() error { return e.kind }

func fail(kind error, key byte, value string) error {
	return errors.WithStack(&Error{Key: key, Value: value, kind: kind})
}

// prefixLen covers the key character and the '=' that follows it.
const prefixLen = 2

// Reader looks up game arguments in a flat token list. It performs syntactic
// extraction only; value ranges are checked elsewhere.
type Reader struct {
	tokens []string
}

// NewReader wraps the provided tokens. The slice is not copied.
func NewReader(tokens []string) *Reader {
	return &Reader{tokens: tokens}
}

// String returns the value carried by the single token whose first character
// is key.
func (r *Reader) String(key byte) (string, error) {
	token, err := r.find(key)
	if err != nil {
		return "", err
	}
	if len(token) <= prefixLen {
		return "", fail(ErrEmptyValue, key, "")
	}
	return token[prefixLen:], nil
}

// Int returns the value for key parsed as an integer.
func (r *Reader) Int(key byte) (int, error) {
	value, err := r.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fail(ErrNotInteger, key, value)
	}
	return n, nil
}

func (r *Reader) find(key byte) (string, error) {
	var (
		found string
		count int
	)
	for _, token := range r.tokens {
		if len(token) == 0 || token[0] != key {
			continue
		}
		count++
		found = token
	}
	switch {
	case count == 0:
		return "", fail(ErrMissing, key, "")
	case count > 1:
		return "", fail(ErrRepeated, key, "")
	}
	return found, nil
}
