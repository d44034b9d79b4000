package storage

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/saravenpi/parley/internal/errors"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	backend, err := OpenSQLite(DBPath(filepath.Join(t.TempDir(), "data")))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	s := New(backend)
	t.Cleanup(func() { s.Close() })
	return s
}

func forEachBackend(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, New(NewMemory())) })
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteStore(t)) })
}

func TestStore_RoundTripObject(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		if err := s.Put(ctx, "obj", map[string]int{"a": 1}); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		got, found, err := s.Get(ctx, "obj")
		if err != nil || !found {
			t.Fatalf("Get() = %v, %v, %v", got, found, err)
		}
		want := map[string]any{"a": float64(1)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Get() = %#v, want %#v", got, want)
		}
	})
}

func TestStore_RoundTripText(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"plain", "plain"},
		{"empty", ""},
		{"brace prefix", "{not json"},
		{"bracket prefix that parses", "[1,2]"},
	}

	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if err := s.Put(ctx, "text", tt.value); err != nil {
					t.Fatalf("Put() error = %v", err)
				}
				got, found, err := s.Get(ctx, "text")
				if err != nil || !found {
					t.Fatalf("Get() = %v, %v, %v", got, found, err)
				}
				if got != tt.value {
					t.Errorf("Get() = %#v, want %q", got, tt.value)
				}
			})
		}
	})
}

func TestStore_GetMissing(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		got, found, err := s.Get(context.Background(), "missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if found || got != nil {
			t.Errorf("Get() = %v, %v; want nil, false", got, found)
		}
	})
}

func TestStore_UntaggedRecords(t *testing.T) {
	backend := NewMemory()
	s := New(backend)
	ctx := context.Background()

	backend.SetItem(ctx, "json", Record{Value: `{"b":[1]}`})
	backend.SetItem(ctx, "broken", Record{Value: `{oops`})
	backend.SetItem(ctx, "plain", Record{Value: `hello`})

	got, _, err := s.Get(ctx, "json")
	if err != nil {
		t.Fatalf("Get(json) error = %v", err)
	}
	if !reflect.DeepEqual(got, map[string]any{"b": []any{float64(1)}}) {
		t.Errorf("Get(json) = %#v", got)
	}

	got, _, err = s.Get(ctx, "broken")
	if err != nil {
		t.Fatalf("Get(broken) should fall back to text, got error %v", err)
	}
	if got != "{oops" {
		t.Errorf("Get(broken) = %#v, want raw text", got)
	}

	got, _, _ = s.Get(ctx, "plain")
	if got != "hello" {
		t.Errorf("Get(plain) = %#v", got)
	}
}

func TestStore_GetInto(t *testing.T) {
	type settings struct {
		Theme string `json:"theme"`
		Size  int    `json:"size"`
	}

	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		if err := s.Put(ctx, "settings", settings{Theme: "dark", Size: 3}); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		var got settings
		found, err := s.GetInto(ctx, "settings", &got)
		if err != nil || !found {
			t.Fatalf("GetInto() = %v, %v", found, err)
		}
		if got != (settings{Theme: "dark", Size: 3}) {
			t.Errorf("GetInto() = %+v", got)
		}

		if err := s.Put(ctx, "lang", "es"); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		var lang string
		if _, err := s.GetInto(ctx, "lang", &lang); err != nil || lang != "es" {
			t.Errorf("GetInto(string) = %q, %v", lang, err)
		}

		var missing settings
		found, err = s.GetInto(ctx, "nope", &missing)
		if found || err != nil {
			t.Errorf("GetInto(missing) = %v, %v", found, err)
		}
	})
}

func TestStore_DeleteAndClear(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		for _, k := range []string{"b", "a", "c"} {
			if err := s.Put(ctx, k, k); err != nil {
				t.Fatalf("Put(%s) error = %v", k, err)
			}
		}

		keys, err := s.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
			t.Errorf("Keys() = %v", keys)
		}

		if err := s.Delete(ctx, "b"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, found, _ := s.Get(ctx, "b"); found {
			t.Error("deleted key should be gone")
		}
		if err := s.Delete(ctx, "never-set"); err != nil {
			t.Errorf("Delete of absent key should succeed, got %v", err)
		}

		if err := s.Clear(ctx); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		keys, _ = s.Keys(ctx)
		if len(keys) != 0 {
			t.Errorf("Keys() after Clear = %v", keys)
		}
	})
}

func TestStore_Overwrite(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		s.Put(ctx, "k", []int{1})
		s.Put(ctx, "k", "now text")
		got, _, err := s.Get(ctx, "k")
		if err != nil || got != "now text" {
			t.Errorf("Get() = %#v, %v", got, err)
		}
	})
}

func TestSQLite_Persists(t *testing.T) {
	path := DBPath(t.TempDir())
	ctx := context.Background()

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := New(first).Put(ctx, "settings.language", "es"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	first.Close()

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()
	got, found, err := New(second).Get(ctx, "settings.language")
	if err != nil || !found || got != "es" {
		t.Errorf("Get() after reopen = %#v, %v, %v", got, found, err)
	}
}

type failingBackend struct {
	MemoryBackend
	err error
}

func (b *failingBackend) GetItem(context.Context, string) (Record, bool, error) {
	return Record{}, false, b.err
}
func (b *failingBackend) SetItem(context.Context, string, Record) error { return b.err }
func (b *failingBackend) RemoveItem(context.Context, string) error      { return b.err }
func (b *failingBackend) Clear(context.Context) error                   { return b.err }

func TestStore_WrapsBackendErrors(t *testing.T) {
	cause := stderrors.New("device store rejected write")
	s := New(&failingBackend{err: cause})
	ctx := context.Background()

	_, _, getErr := s.Get(ctx, "k")
	checks := map[string]error{
		"put":    s.Put(ctx, "k", "v"),
		"get":    getErr,
		"delete": s.Delete(ctx, "k"),
		"clear":  s.Clear(ctx),
	}
	for name, err := range checks {
		t.Run(name, func(t *testing.T) {
			if !errors.Is(err, errors.KindStorage) {
				t.Errorf("%s error kind = %v, want storage", name, errors.GetKind(err))
			}
			if !stderrors.Is(err, cause) {
				t.Errorf("%s error should wrap the backend error", name)
			}
		})
	}
}

func TestStore_PutUnencodable(t *testing.T) {
	s := New(NewMemory())
	err := s.Put(context.Background(), "ch", make(chan int))
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Put(chan) error = %v, want KindInvalid", err)
	}
}

func TestOpenSQLite_DataDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := OpenSQLite(DBPath(file))
	if err == nil {
		t.Fatal("expected error when the data directory is a file")
	}
	if !errors.Is(err, errors.KindIO) {
		t.Errorf("error kind = %v, want %v", errors.GetKind(err), errors.KindIO)
	}
}
