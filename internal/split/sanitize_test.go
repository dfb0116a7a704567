package split

import (
	"path/filepath"
	"testing"
)

func TestResolveTarget_Plain(t *testing.T) {
	root := t.TempDir()
	got, err := resolveTarget(root, "./proj/src/main.c")
	if err != nil {
		t.Fatalf("resolveTarget failed: %v", err)
	}
	if got != filepath.Join(root, "proj", "src", "main.c") {
		t.Fatalf("unexpected target: %q", got)
	}
}

func TestResolveTarget_InternalDotDotIdempotent(t *testing.T) {
	root := t.TempDir()
	a, err := resolveTarget(root, "safe/../safe.txt")
	if err != nil {
		t.Fatalf("resolveTarget failed: %v", err)
	}
	b, err := resolveTarget(root, "safe.txt")
	if err != nil {
		t.Fatalf("resolveTarget failed: %v", err)
	}
	if a != b {
		t.Fatalf("safe/../safe.txt resolved to %q, safe.txt to %q", a, b)
	}
}

func TestResolveTarget_RejectsEscapes(t *testing.T) {
	root := t.TempDir()
	for _, declared := range []string{
		"../outside.txt",
		"../../etc/passwd",
		"subdir/../../x",
		"..",
		".",
		"",
		"./",
	} {
		if got, err := resolveTarget(root, declared); err == nil {
			t.Fatalf("resolveTarget(%q) = %q, want rejection", declared, got)
		}
	}
}

func TestResolveTarget_StripsPosixRoot(t *testing.T) {
	root := t.TempDir()
	got, err := resolveTarget(root, "/etc/passwd")
	if err != nil {
		t.Fatalf("resolveTarget failed: %v", err)
	}
	if got != filepath.Join(root, "etc", "passwd") {
		t.Fatalf("expected the stripped path inside the root, got %q", got)
	}
}

func TestResolveTarget_AbsoluteAfterStripRejected(t *testing.T) {
	root := t.TempDir()
	// A POSIX-rooted path that still escapes after stripping.
	if got, err := resolveTarget(root, "/../x"); err == nil {
		t.Fatalf("resolveTarget(\"/../x\") = %q, want rejection", got)
	}
}
