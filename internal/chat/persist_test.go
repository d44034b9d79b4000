package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/saravenpi/parley/internal/models"
	"github.com/saravenpi/parley/internal/storage"
)

func TestSaveSent_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.New(storage.NewMemory())
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	first := models.Message{ID: "a", Content: "first", IsMine: true, Timestamp: base}
	second := models.Message{ID: "b", Content: "second", IsMine: true, Timestamp: base.Add(time.Minute)}

	if err := SaveSent(ctx, store, "7", first); err != nil {
		t.Fatalf("SaveSent() error = %v", err)
	}
	if err := SaveSent(ctx, store, "7", second); err != nil {
		t.Fatalf("SaveSent() error = %v", err)
	}

	sent, err := LoadSent(ctx, store, "7")
	if err != nil {
		t.Fatalf("LoadSent() error = %v", err)
	}
	if len(sent) != 2 || sent[0].ID != "b" || sent[1].ID != "a" {
		t.Fatalf("LoadSent() = %+v, want newest-first [b a]", sent)
	}
	if !sent[0].Timestamp.Equal(second.Timestamp) {
		t.Errorf("timestamp = %v, want %v", sent[0].Timestamp, second.Timestamp)
	}

	other, err := LoadSent(ctx, store, "8")
	if err != nil || len(other) != 0 {
		t.Errorf("LoadSent(other chat) = %v, %v", other, err)
	}
}

func TestSaveSent_Concurrent(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.OpenSQLite(storage.DBPath(t.TempDir()))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	store := storage.New(backend)
	defer store.Close()

	const n = 20
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := models.Message{ID: fmt.Sprintf("m%02d", i), Content: "hi", IsMine: true, Timestamp: base}
			errs <- SaveSent(ctx, store, "7", msg)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("SaveSent() error = %v", err)
		}
	}

	sent, err := LoadSent(ctx, store, "7")
	if err != nil {
		t.Fatalf("LoadSent() error = %v", err)
	}
	if len(sent) != n {
		t.Fatalf("persisted %d of %d messages", len(sent), n)
	}
	seen := make(map[string]bool, n)
	for _, m := range sent {
		seen[m.ID] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct ids, want %d", len(seen), n)
	}
}

func TestMergeHistory_SentFirst(t *testing.T) {
	sentAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	// Seeded history is generated from a later launch, so it looks newer.
	seededAt := sentAt.Add(2 * time.Hour)
	seeded := []models.Message{
		{ID: "s1", Timestamp: seededAt},
		{ID: "s2", Timestamp: seededAt.Add(-time.Minute)},
	}
	sent := []models.Message{
		{ID: "m1", Timestamp: sentAt.Add(time.Minute)},
		{ID: "m2", Timestamp: sentAt},
	}

	got := MergeHistory(sent, seeded)
	want := []string{"m1", "m2", "s1", "s2"}
	if len(got) != len(want) {
		t.Fatalf("MergeHistory() len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("MergeHistory()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}
