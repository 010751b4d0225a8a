package apicache

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")

	c := Open(path, zap.NewNop())
	c.Record("Polycom", "RealPresence Group 300", "/rest/system")

	if got, ok := c.Lookup("Polycom", "RealPresence Group 300"); !ok || got != "/rest/system" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}

	// A fresh cache reads the persisted file back.
	c2 := Open(path, zap.NewNop())
	if got, ok := c2.Lookup("Polycom", "RealPresence Group 300"); !ok || got != "/rest/system" {
		t.Errorf("reloaded Lookup = %q, %v", got, ok)
	}
}

func TestCacheMissingFile(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	if _, ok := c.Lookup("Cisco", "Webex Room Kit"); ok {
		t.Error("empty cache should miss")
	}
}

func TestCacheCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Open(path, zap.NewNop())
	if _, ok := c.Lookup("Cisco", "Webex Room Kit"); ok {
		t.Error("corrupt cache should start empty")
	}

	// And it recovers: writes still work.
	c.Record("Cisco", "Webex Room Kit", "/status.xml")
	if got, ok := c.Lookup("Cisco", "Webex Room Kit"); !ok || got != "/status.xml" {
		t.Errorf("Lookup after recovery = %q, %v", got, ok)
	}
}

func TestCacheReorder(t *testing.T) {
	defaults := []string{"/a", "/b", "/c"}

	c := Open("", zap.NewNop())

	got := c.Reorder("Polycom", "Group 300", defaults)
	if len(got) != 3 || got[0] != "/a" {
		t.Errorf("miss should keep default order, got %v", got)
	}

	c.Record("Polycom", "Group 300", "/c")
	got = c.Reorder("Polycom", "Group 300", defaults)
	if len(got) != 3 || got[0] != "/c" || got[1] != "/a" || got[2] != "/b" {
		t.Errorf("hit should front the cached path, got %v", got)
	}
}

func TestCacheIgnoresEmptyKeys(t *testing.T) {
	c := Open("", zap.NewNop())
	c.Record("", "Model", "/x")
	c.Record("Cisco", "", "/x")
	if _, ok := c.Lookup("", "Model"); ok {
		t.Error("empty manufacturer should never hit")
	}
}
