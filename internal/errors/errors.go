// Package errors provides structured error types for Parley.
// An Error records which operation failed and what kind of failure it was,
// so the UI can decide what to show without matching on strings.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindStorage:
		return "storage error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Parley.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
//   - Op: the operation name
//   - Kind: the error kind
//   - string: context message
//   - error: the underlying error
//
// When no underlying error is given the context becomes the error text.
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Storage errors
func StorageWriteFailed(key string, err error) error {
	return E(Op("storage.Put"), KindStorage, fmt.Sprintf("failed to save value for key %q", key), err)
}

func StorageReadFailed(key string, err error) error {
	return E(Op("storage.Get"), KindStorage, fmt.Sprintf("failed to retrieve value for key %q", key), err)
}

func StorageDeleteFailed(key string, err error) error {
	return E(Op("storage.Delete"), KindStorage, fmt.Sprintf("failed to remove value for key %q", key), err)
}

func StorageClearFailed(err error) error {
	return E(Op("storage.Clear"), KindStorage, "failed to clear storage", err)
}

func StorageDecodeFailed(key string, err error) error {
	return E(Op("storage.Get"), KindInvalid, fmt.Sprintf("stored value for key %q is not valid JSON", key), err)
}

// Config errors
func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}
