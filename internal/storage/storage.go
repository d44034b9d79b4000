// Package storage is a small key/value helper. Strings are stored as-is and
// everything else is stored as JSON, so callers can persist settings and
// message lists without thinking about encoding.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saravenpi/parley/internal/errors"
	"github.com/saravenpi/parley/internal/logger"
)

// Encoding tags how a record's text was produced.
type Encoding string

const (
	// EncodingUnknown marks records written without a tag. Their type is
	// guessed from the first character.
	EncodingUnknown Encoding = ""
	EncodingText    Encoding = "text"
	EncodingJSON    Encoding = "json"
)

// Record is the unit a Backend stores.
type Record struct {
	Value    string
	Encoding Encoding
}

// Backend is the persistent device store underneath a Store.
type Backend interface {
	GetItem(ctx context.Context, key string) (Record, bool, error)
	SetItem(ctx context.Context, key string, rec Record) error
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Store wraps a Backend with JSON-transparent values.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Put saves value under key. Strings are stored verbatim; any other value is
// encoded as JSON first.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	rec, err := encode(value)
	if err != nil {
		return errors.E(errors.Op("storage.Put"), errors.KindInvalid, fmt.Sprintf("cannot encode value for key %q", key), err)
	}
	if err := s.backend.SetItem(ctx, key, rec); err != nil {
		logger.Error("Error saving key %q: %v", key, err)
		return errors.StorageWriteFailed(key, err)
	}
	return nil
}

func encode(value any) (Record, error) {
	if text, ok := value.(string); ok {
		return Record{Value: text, Encoding: EncodingText}, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return Record{}, err
	}
	return Record{Value: string(data), Encoding: EncodingJSON}, nil
}

// Get returns the value stored under key. found is false when the key is
// absent, which is distinct from a stored empty string. JSON records decode
// to the generic shapes encoding/json produces (map[string]any, []any,
// float64, ...); text records come back as string.
func (s *Store) Get(ctx context.Context, key string) (value any, found bool, err error) {
	rec, found, err := s.backend.GetItem(ctx, key)
	if err != nil {
		logger.Error("Error retrieving key %q: %v", key, err)
		return nil, false, errors.StorageReadFailed(key, err)
	}
	if !found {
		return nil, false, nil
	}

	switch rec.Encoding {
	case EncodingText:
		return rec.Value, true, nil
	case EncodingJSON:
		var v any
		if err := json.Unmarshal([]byte(rec.Value), &v); err != nil {
			return nil, true, errors.StorageDecodeFailed(key, err)
		}
		return v, true, nil
	default:
		// Untagged: a value that merely starts with a bracket stays text.
		if looksLikeJSON(rec.Value) {
			var v any
			if err := json.Unmarshal([]byte(rec.Value), &v); err == nil {
				return v, true, nil
			}
		}
		return rec.Value, true, nil
	}
}

// GetInto decodes the value stored under key into dst. Text records are
// decoded as JSON too, which lets untagged records fill typed values.
func (s *Store) GetInto(ctx context.Context, key string, dst any) (found bool, err error) {
	rec, found, err := s.backend.GetItem(ctx, key)
	if err != nil {
		logger.Error("Error retrieving key %q: %v", key, err)
		return false, errors.StorageReadFailed(key, err)
	}
	if !found {
		return false, nil
	}
	if text, ok := dst.(*string); ok && rec.Encoding != EncodingJSON {
		*text = rec.Value
		return true, nil
	}
	if err := json.Unmarshal([]byte(rec.Value), dst); err != nil {
		return true, errors.StorageDecodeFailed(key, err)
	}
	return true, nil
}

// GetString returns the raw text stored under key, whatever its encoding.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	rec, found, err := s.backend.GetItem(ctx, key)
	if err != nil {
		logger.Error("Error retrieving key %q: %v", key, err)
		return "", false, errors.StorageReadFailed(key, err)
	}
	return rec.Value, found, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.backend.RemoveItem(ctx, key); err != nil {
		logger.Error("Error removing key %q: %v", key, err)
		return errors.StorageDeleteFailed(key, err)
	}
	return nil
}

// Clear removes every key. Use with care.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		logger.Error("Error clearing storage: %v", err)
		return errors.StorageClearFailed(err)
	}
	return nil
}

// Keys lists stored keys in lexical order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.backend.Keys(ctx)
	if err != nil {
		return nil, errors.E(errors.Op("storage.Keys"), errors.KindStorage, "failed to list keys", err)
	}
	return keys, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func looksLikeJSON(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}
