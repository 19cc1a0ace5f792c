package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
)

func testTable() *catalog.Table {
	return catalog.NewTable(map[string]catalog.Metadata{
		"France": {
			Name:      "France",
			Continent: "Europe",
			Flag:      catalog.FlagArt{Layout: "vertical", Colors: []string{"blue", "white", "red"}},
		},
		"Chad": {
			Name:      "Чад",
			Continent: "Africa",
			Flag:      catalog.FlagArt{Layout: "vertical", Colors: []string{"navy", "gold", "red"}},
		},
		"Nepal": {Name: "Nepal", Continent: "Asia"},
	})
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "catalog.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreImportAndLoad(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	n, err := store.ImportCatalog(testTable(), "test")
	if err != nil {
		t.Fatalf("ImportCatalog() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 imported items, got %d", n)
	}

	table, err := store.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}

	ids := table.Items()
	if len(ids) != 3 || ids[0] != "Chad" || ids[2] != "Nepal" {
		t.Errorf("Unexpected ids: %v", ids)
	}

	chad, ok := table.Metadata("Chad")
	if !ok {
		t.Fatal("Chad missing after load")
	}
	if chad.Name != "Чад" || chad.Continent != "Africa" {
		t.Errorf("Chad metadata = %+v", chad)
	}
	if chad.Flag.Layout != "vertical" || len(chad.Flag.Colors) != 3 || chad.Flag.Colors[1] != "gold" {
		t.Errorf("Chad flag = %+v", chad.Flag)
	}

	nepal, _ := table.Metadata("Nepal")
	if nepal.Flag.Colors != nil {
		t.Errorf("Nepal should have no colors, got %v", nepal.Flag.Colors)
	}
}

func TestStoreImportReplaces(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.ImportCatalog(testTable(), "first"); err != nil {
		t.Fatalf("ImportCatalog() failed: %v", err)
	}

	small := catalog.NewTable(map[string]catalog.Metadata{
		"Peru": {Name: "Peru", Continent: "South America"},
	})
	if _, err := store.ImportCatalog(small, "second"); err != nil {
		t.Fatalf("ImportCatalog() failed: %v", err)
	}

	count, err := store.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 item after re-import, got %d", count)
	}

	rec, err := store.LastImport()
	if err != nil {
		t.Fatalf("LastImport() failed: %v", err)
	}
	if rec.Source != "second" || rec.Items != 1 {
		t.Errorf("LastImport() = %+v", rec)
	}
}

func TestStoreImportSkipsMissingMetadata(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	p := testTable().Restrict([]string{"France", "Atlantis"})
	n, err := store.ImportCatalog(p, "restricted")
	if err != nil {
		t.Fatalf("ImportCatalog() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 imported item, got %d", n)
	}
}

func TestStoreEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadCatalog(); !errors.Is(err, ErrNoImport) {
		t.Errorf("LoadCatalog() on empty db = %v, want ErrNoImport", err)
	}
	if _, err := store.LastImport(); !errors.Is(err, ErrNoImport) {
		t.Errorf("LastImport() on empty db = %v, want ErrNoImport", err)
	}

	empty := catalog.NewTable(map[string]catalog.Metadata{})
	if _, err := store.ImportCatalog(empty, "empty"); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("ImportCatalog(empty) = %v, want ErrEmptyCatalog", err)
	}
	if n, _ := store.ItemCount(); n != 0 {
		t.Errorf("Failed import should roll back, got %d items", n)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.ImportCatalog(testTable(), "test"); err != nil {
		t.Fatalf("ImportCatalog() failed: %v", err)
	}
	store.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store2.Close()

	table, err := store2.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Expected 3 items after reopen, got %d", table.Len())
	}
}
