package samples

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSample(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "abstract-draft.txt", "This study examines sleep.")
	writeSample(t, dir, "methods.md", "# Methods Section\n\nParticipants were recruited.")
	writeSample(t, dir, "notes.json", `{"ignored": true}`)

	store := NewStore(dir, time.Minute, nil)
	all, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(all))
	}
	if all[0].ID != "abstract-draft" || all[1].ID != "methods" {
		t.Errorf("unexpected order: %s, %s", all[0].ID, all[1].ID)
	}
	if all[0].Title != "Abstract Draft" {
		t.Errorf("title from file name: got %q", all[0].Title)
	}
	if all[1].Title != "Methods Section" {
		t.Errorf("title from heading: got %q", all[1].Title)
	}
}

func TestStore_Get(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "intro.txt", "An introduction.")

	store := NewStore(dir, time.Minute, nil)
	got, err := store.Get("intro")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Text != "An introduction." {
		t.Fatalf("got %+v", got)
	}

	missing, err := store.Get("nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestStore_CacheExpiry(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "one.txt", "first")

	now := time.Unix(1000, 0)
	store := NewStore(dir, 30*time.Second, nil)
	store.now = func() time.Time { return now }

	all, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(all))
	}

	// Within TTL the cache hides new files.
	writeSample(t, dir, "two.txt", "second")
	now = now.Add(10 * time.Second)
	all, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("cache should still hold 1 sample, got %d", len(all))
	}

	// Past TTL the store reloads.
	now = now.Add(30 * time.Second)
	all, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("expected reload to find 2 samples, got %d", len(all))
	}
}

func TestStore_MissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"), time.Minute, nil)
	all, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty list, got %d", len(all))
	}
}
