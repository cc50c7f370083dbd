package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirOverride(t *testing.T) {
	t.Setenv("NAVBAR_CONFIG_DIR", "/tmp/navbar-test")
	if Dir() != "/tmp/navbar-test" {
		t.Errorf("Dir = %q", Dir())
	}
	if InitFile() != filepath.Join("/tmp/navbar-test", "init.lua") {
		t.Errorf("InitFile = %q", InitFile())
	}
}

func TestHasInitFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NAVBAR_CONFIG_DIR", dir)

	if HasInitFile() {
		t.Fatal("no init.lua yet")
	}
	if err := os.WriteFile(filepath.Join(dir, "init.lua"), []byte("-- empty"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !HasInitFile() {
		t.Fatal("init.lua not found")
	}
}
