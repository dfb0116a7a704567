package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scbundle/scb/internal/rules"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewExtensionSet_Normalizes(t *testing.T) {
	set := NewExtensionSet([]string{".PY", "rs", " .C ", ""})
	for _, ext := range []string{".py", ".rs", ".c", ".PY", ".Rs"} {
		if !set.Contains(ext) {
			t.Fatalf("expected set to contain %q", ext)
		}
	}
	if set.Contains(".go") {
		t.Fatal("did not expect .go")
	}
}

func TestFiles_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.py"), "x")
	write(t, filepath.Join(dir, "b.md"), "x")
	write(t, filepath.Join(dir, "sub", "c.PY"), "x")

	files, err := Files(dir, NewExtensionSet([]string{".py"}), nil)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
}

func TestFiles_SkipsDotSegments(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.py"), "x")
	write(t, filepath.Join(dir, ".git", "b.py"), "x")
	write(t, filepath.Join(dir, ".hidden.py"), "x")
	write(t, filepath.Join(dir, "sub", ".env.py"), "x")

	files, err := Files(dir, NewExtensionSet([]string{".py"}), nil)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.py" {
		t.Fatalf("expected only a.py, got %v", files)
	}
}

func TestFiles_FilterRules(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.py"), "x")
	write(t, filepath.Join(dir, "a_test.py"), "x")
	write(t, filepath.Join(dir, "build", "b.py"), "x")

	rs := []rules.Rule{
		{Pattern: "*_test.py", Active: true},
		{Pattern: "build", Active: true},
	}
	files, err := Files(dir, NewExtensionSet([]string{".py"}), rs)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.py" {
		t.Fatalf("expected only a.py, got %v", files)
	}
}

func TestFiles_RuleNeverSeesRootName(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "proj")
	write(t, filepath.Join(root, "a.py"), "x")

	// Collection matches rules against paths relative to the root, so a
	// pattern naming the root directory itself excludes nothing.
	rs := []rules.Rule{{Pattern: "proj", Active: true}}
	files, err := Files(root, NewExtensionSet([]string{".py"}), rs)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %v", files)
	}
}

func TestFiles_MissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "nope"), NewExtensionSet([]string{".py"}), nil)
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func TestDisplayPath_KeepsRootName(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "proj")
	file := filepath.Join(root, "src", "main.c")
	write(t, file, "x")

	got, err := DisplayPath(root, file)
	if err != nil {
		t.Fatalf("DisplayPath failed: %v", err)
	}
	if got != "./proj/src/main.c" {
		t.Fatalf("expected ./proj/src/main.c, got %q", got)
	}
}

func TestDisplayPath_ForwardSlashes(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "p")
	file := filepath.Join(root, "a", "b", "c.py")
	write(t, file, "x")

	got, err := DisplayPath(root, file)
	if err != nil {
		t.Fatalf("DisplayPath failed: %v", err)
	}
	if got != "./p/a/b/c.py" {
		t.Fatalf("expected ./p/a/b/c.py, got %q", got)
	}
}
