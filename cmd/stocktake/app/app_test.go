package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testConfig returns a config rooted in a temp dir so tests never touch
// real data files.
func testConfig(t *testing.T) *Config {
	t.Helper()
	config := &Config{
		DataDir:   t.TempDir(),
		LogFormat: "json",
		LogOutput: "stderr",
	}
	config.applyDefaults()
	return config
}

// TestNew verifies app construction with a custom config.
func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-01-01", "test", WithConfig(testConfig(t)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.Version() != "1.2.3" {
		t.Errorf("Version() = %s, want 1.2.3", application.Version())
	}
	if application.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", application.Commit())
	}
	if application.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if application.Console() == nil {
		t.Error("Console() returned nil")
	}
}

// TestApp_StoreLoadsCatalog verifies lazy store creation loads the
// catalog file and that the instance is a singleton.
func TestApp_StoreLoadsCatalog(t *testing.T) {
	config := testConfig(t)
	line := "Laptop;LP01;ThinkPad;Lenovo;1000;5;true;24\n"
	if err := os.WriteFile(config.CatalogPath(), []byte(line), 0o644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}

	application, err := New("dev", "", "", "", WithConfig(config))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	store, err := application.Store()
	if err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	again, err := application.Store()
	if err != nil {
		t.Fatalf("second Store() failed: %v", err)
	}
	if store != again {
		t.Error("Store() created a second instance")
	}

	// Loading audits to the configured audit file
	if _, err := os.Stat(config.AuditPath()); err != nil {
		t.Errorf("audit file not written: %v", err)
	}
}

// TestApp_StoreSurvivesLoadError verifies an IO failure on load is
// reported but never fatal: the session continues with the best-effort
// in-memory state.
func TestApp_StoreSurvivesLoadError(t *testing.T) {
	config := testConfig(t)
	// A directory at the catalog path opens fine but fails on read.
	if err := os.Mkdir(config.CatalogPath(), 0o755); err != nil {
		t.Fatalf("creating catalog-path directory: %v", err)
	}

	application, err := New("dev", "", "", "", WithConfig(config))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	store, err := application.Store()
	if err != nil {
		t.Fatalf("Store() must not fail on a load IO error, got: %v", err)
	}
	if store == nil {
		t.Fatal("Store() returned nil store after load IO error")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}

	data, err := os.ReadFile(config.AuditPath())
	if err != nil {
		t.Fatalf("reading audit file: %v", err)
	}
	if !strings.Contains(string(data), "LOAD_FILE_ERROR") {
		t.Errorf("audit log missing LOAD_FILE_ERROR entry, got:\n%s", data)
	}
}

// TestApp_ExecuteRejectsInvalidFormat verifies an unknown --output value
// fails before any command runs instead of silently falling back to the
// table renderer.
func TestApp_ExecuteRejectsInvalidFormat(t *testing.T) {
	application, err := New("dev", "", "", "", WithConfig(testConfig(t)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	err = application.Execute(context.Background(), []string{"list", "--output", "bogus"})
	if err == nil {
		t.Fatal("Execute() accepted an invalid output format")
	}
	if !strings.Contains(err.Error(), `invalid format "bogus"`) {
		t.Errorf("Execute() error = %v, want invalid format message", err)
	}
}

// TestApp_SaveStoreRoundTrip verifies SaveStore persists the catalog.
func TestApp_SaveStoreRoundTrip(t *testing.T) {
	config := testConfig(t)
	application, err := New("dev", "", "", "", WithConfig(config))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Nothing loaded yet: SaveStore is a no-op
	if err := application.SaveStore(); err != nil {
		t.Fatalf("SaveStore() on empty app failed: %v", err)
	}
	if _, err := os.Stat(config.CatalogPath()); !os.IsNotExist(err) {
		t.Error("SaveStore() wrote a catalog before anything was loaded")
	}

	if _, err := application.Store(); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if err := application.SaveStore(); err != nil {
		t.Fatalf("SaveStore() failed: %v", err)
	}
	if _, err := os.Stat(config.CatalogPath()); err != nil {
		t.Errorf("catalog file not written: %v", err)
	}
}

// TestApp_Paths verifies path accessors resolve under the data dir.
func TestApp_Paths(t *testing.T) {
	config := testConfig(t)
	application, err := New("dev", "", "", "", WithConfig(config))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got, want := application.CatalogPath(), filepath.Join(config.DataDir, "products.txt"); got != want {
		t.Errorf("CatalogPath() = %s, want %s", got, want)
	}
	if got, want := application.ExportPath(), filepath.Join(config.DataDir, "inventory_list.txt"); got != want {
		t.Errorf("ExportPath() = %s, want %s", got, want)
	}
}
