package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nyankohost/dctw/internal/logger"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestConfigFileLoadAbsent(t *testing.T) {
	store := NewConfigFile(filepath.Join(t.TempDir(), "missing.json"), logger.Nop())

	var doc testDoc
	found, err := store.Load(&doc)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("absent file must load as not found, not as an error")
	}
	if store.Exists() {
		t.Error("Exists() should be false for an absent file")
	}
}

func TestConfigFileSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	store := NewConfigFile(path, logger.Nop())

	if err := store.Save(testDoc{Name: "dctw", Count: 3}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}

	var doc testDoc
	found, err := store.Load(&doc)
	if err != nil {
		t.Fatal(err)
	}
	if !found || doc.Name != "dctw" || doc.Count != 3 {
		t.Errorf("loaded %+v found=%v", doc, found)
	}
}

func TestConfigFileCorruptIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{{{"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := NewConfigFile(path, logger.Nop())

	var doc testDoc
	found, err := store.Load(&doc)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("corrupt file must degrade to not found")
	}
}

func TestConfigFileOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewConfigFile(path, logger.Nop())

	if err := store.Save(testDoc{Name: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testDoc{Name: "second"}); err != nil {
		t.Fatal(err)
	}

	var doc testDoc
	if _, err := store.Load(&doc); err != nil {
		t.Fatal(err)
	}
	if doc.Name != "second" {
		t.Errorf("name = %q, want second", doc.Name)
	}
}
