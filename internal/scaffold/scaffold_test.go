package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scbundle/scb/internal/config"
)

func TestRun_WritesValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scb.yaml")
	if err := Run(path, false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if len(cfg.Extensions) == 0 {
		t.Fatal("generated config must list extensions")
	}
}

func TestRun_RefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scb.yaml")
	if err := os.WriteFile(path, []byte("mine\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := Run(path, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected an already-exists error, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "mine\n" {
		t.Fatal("existing file was clobbered")
	}
}

func TestRun_ForceReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scb.yaml")
	if err := os.WriteFile(path, []byte("mine\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Run(path, true); err != nil {
		t.Fatalf("Run --force failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) == "mine\n" {
		t.Fatal("force must replace the existing file")
	}
}
