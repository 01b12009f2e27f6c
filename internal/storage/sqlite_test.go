package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gridpad/internal/grid"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLatest(t *testing.T) {
	store := openTestStore(t)

	g, _ := grid.New(5)
	g.Toggle(0)
	g.Toggle(2)
	g.Toggle(4)

	id, err := store.SaveSnapshot("work", g)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	entry, err := store.LatestSnapshot("work")
	if err != nil {
		t.Fatalf("LatestSnapshot failed: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a snapshot")
	}
	if entry.Height != 5 {
		t.Errorf("expected height 5, got %d", entry.Height)
	}

	restored, _ := grid.New(5)
	if err := restored.SetState(entry.Cells); err != nil {
		t.Fatalf("restoring snapshot failed: %v", err)
	}
	if !restored.Equal(g) {
		t.Error("restored grid should equal the saved grid")
	}
}

func TestStoreLatestReturnsNewest(t *testing.T) {
	store := openTestStore(t)

	g, _ := grid.New(3)
	if _, err := store.SaveSnapshot("work", g); err != nil {
		t.Fatal(err)
	}
	g.Toggle(1)
	if _, err := store.SaveSnapshot("work", g); err != nil {
		t.Fatal(err)
	}

	entry, err := store.LatestSnapshot("work")
	if err != nil {
		t.Fatalf("LatestSnapshot failed: %v", err)
	}
	if entry.Cells[1] != grid.On {
		t.Error("expected the newest snapshot")
	}
}

func TestStoreLatestMissing(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.LatestSnapshot("nothing-here")
	if err != nil {
		t.Fatalf("LatestSnapshot failed: %v", err)
	}
	if entry != nil {
		t.Error("expected nil for an unknown name")
	}
}

func TestStoreList(t *testing.T) {
	store := openTestStore(t)

	g, _ := grid.New(4)
	for i := 0; i < 3; i++ {
		g.Toggle(i)
		if _, err := store.SaveSnapshot("work", g); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.ListSnapshots(2)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID < entries[1].ID {
		t.Error("entries should be newest first")
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	g, _ := grid.New(3)
	if _, err := store.SaveSnapshot("scratch", g); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteSnapshots("scratch"); err != nil {
		t.Fatalf("DeleteSnapshots failed: %v", err)
	}

	entry, err := store.LatestSnapshot("scratch")
	if err != nil {
		t.Fatal(err)
	}
	if entry != nil {
		t.Error("expected no snapshot after delete")
	}
}

func TestCellsCodec(t *testing.T) {
	cells := []grid.Cell{grid.On, grid.Off, grid.On}
	encoded := encodeCells(cells)
	if encoded != "101" {
		t.Errorf("expected %q, got %q", "101", encoded)
	}

	decoded, err := decodeCells(encoded)
	if err != nil {
		t.Fatalf("decodeCells failed: %v", err)
	}
	for i := range cells {
		if decoded[i] != cells[i] {
			t.Errorf("cell %d: expected %v, got %v", i, cells[i], decoded[i])
		}
	}

	if _, err := decodeCells("10x"); err == nil {
		t.Error("expected error for corrupt cell string")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
