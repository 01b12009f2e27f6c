package grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	g, _ := New(5)
	g.Toggle(0)
	g.Toggle(2)
	g.Toggle(4)
	saved := g.State()

	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fresh, _ := New(5)
	if err := fresh.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := fresh.State()
	for i := range saved {
		if got[i] != saved[i] {
			t.Errorf("cell %d: expected %v after round trip, got %v", i, saved[i], got[i])
		}
	}
	if fresh.String() != "#.#.#" {
		t.Errorf("expected %q after round trip, got %q", "#.#.#", fresh.String())
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	g, _ := New(5)
	g.Toggle(1)
	before := g.State()

	err := g.Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}

	after := g.State()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("cell %d changed after failed load", i)
		}
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("not json at all {"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, _ := New(5)
	err := g.Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if g.CountOn() != 0 {
		t.Error("grid changed after failed load")
	}
}

func TestLoadSizeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	g, _ := New(8)
	g.Toggle(3)
	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	other, _ := New(5)
	other.Toggle(0)
	before := other.State()

	err := other.Load(path)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}

	after := other.State()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("cell %d changed after failed load", i)
		}
	}
}

func TestLoadInconsistentHeightField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	// Height field disagrees with the cell count.
	content := `{"height": 9, "cells": [0, 1, 0]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, _ := New(3)
	if err := g.Load(path); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch for inconsistent height field, got %v", err)
	}
}

func TestLoadWithoutHeightField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	// The height field is optional metadata; cells alone decide.
	content := `{"cells": [0, 1, 0]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, _ := New(3)
	if err := g.Load(path); err != nil {
		t.Fatalf("Load failed for a file without a height field: %v", err)
	}
	if g.String() != ".#." {
		t.Errorf("expected %q, got %q", ".#.", g.String())
	}
}

func TestLoadFileWithoutHeightField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	content := `{"cells": [1, 0, 0, 1]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed for a file without a height field: %v", err)
	}
	if g.Height() != 4 {
		t.Errorf("expected height 4 from the cell count, got %d", g.Height())
	}
	if g.String() != "#..#" {
		t.Errorf("expected %q, got %q", "#..#", g.String())
	}
}

func TestLoadInvalidCellValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	content := `{"height": 3, "cells": [0, 7, 1]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, _ := New(3)
	if err := g.Load(path); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if g.CountOn() != 0 {
		t.Error("grid changed after failed load")
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	g, _ := New(3)
	err := g.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "state.json"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestSaveLeavesNoTempFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	g, _ := New(4)
	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "state.json" {
		t.Errorf("expected only state.json in dir, got %v", entries)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	g, _ := New(6)
	g.Toggle(5)
	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Height() != 6 {
		t.Errorf("expected height 6, got %d", loaded.Height())
	}
	if !loaded.Equal(g) {
		t.Error("loaded grid should equal the saved grid")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
