package fastdl

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEligible(t *testing.T) {
	dir := t.TempDir()
	fresh := filepath.Join(dir, "fresh.mdl")
	done := filepath.Join(dir, "done.mdl")
	corrupt := filepath.Join(dir, "corrupt.vtf")
	blocked := filepath.Join(dir, "blocked.bsp")
	text := filepath.Join(dir, "notes.txt")

	touch(t, fresh, "x")
	touch(t, done, "x")
	touch(t, done+".bz2", "BZh9")
	touch(t, corrupt, "x")
	touch(t, corrupt+".bz2", "")
	touch(t, blocked, "x")
	if err := os.Mkdir(blocked+".bz2", 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	touch(t, text, "x")

	tests := []struct {
		path string
		want bool
	}{
		{fresh, true},
		{done, false},
		{corrupt, false},
		{blocked, false},
		{text, false},
	}
	for _, tt := range tests {
		if got := Eligible(tt.path, nil); got != tt.want {
			t.Errorf("Eligible(%s) = %v, want %v", filepath.Base(tt.path), got, tt.want)
		}
	}
}

func TestEligibleDanglingArtifactLink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.mdl")
	touch(t, path, "x")
	symlink(t, filepath.Join(dir, "gone"), path+".bz2")

	if Eligible(path, nil) {
		t.Error("Expected a dangling artifact symlink to count as present")
	}
}

func TestEligibleUsesConfiguredSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.mdl")
	touch(t, path, "x")
	touch(t, path+".bz2", "x")

	if Eligible(path, &Config{Algorithm: AlgorithmBzip2}) {
		t.Error("Expected .bz2 sibling to block bzip2")
	}
	if !Eligible(path, &Config{Algorithm: AlgorithmGzip}) {
		t.Error("Expected .bz2 sibling not to block gzip")
	}
}

// Layout from the FastDL mirror scenario: one new model, a hidden subtree,
// a non-asset and an asset that already has its artifact.
func scenarioTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	touch(t, filepath.Join(root, "a", "model.mdl"), "IDST model data")
	touch(t, filepath.Join(root, "a", ".hidden", "skip.mdl"), "hidden")
	touch(t, filepath.Join(root, "b", "readme.txt"), "readme")
	touch(t, filepath.Join(root, "b", "tex.vtf"), "VTF texture")
	touch(t, filepath.Join(root, "b", "tex.vtf.bz2"), "")
	return root
}

func TestPlanScenario(t *testing.T) {
	root := scenarioTree(t)

	wl, err := Plan(root, nil)
	if err != nil {
		t.Fatalf("Failed to plan: %v", err)
	}
	want := []string{filepath.Join(root, "a", "model.mdl")}
	if !reflect.DeepEqual(wl.Items, want) {
		t.Fatalf("Unexpected work list:\ngot  %v\nwant %v", wl.Items, want)
	}
	if wl.Total() != 1 {
		t.Errorf("Expected total 1, got %d", wl.Total())
	}
	if wl.Root != root {
		t.Errorf("Expected root %s, got %s", root, wl.Root)
	}
}

func TestPlanDeduplicatesDirectoryAliases(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "real", "x.mdl"), "x")
	if err := os.Mkdir(filepath.Join(root, "d"), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	symlink(t, filepath.Join("..", "real"), filepath.Join(root, "d", "alias"))

	wl, err := Plan(root, nil)
	if err != nil {
		t.Fatalf("Failed to plan: %v", err)
	}
	// d/alias sorts before real, so the alias path is the one kept.
	want := []string{filepath.Join(root, "d", "alias", "x.mdl")}
	if !reflect.DeepEqual(wl.Items, want) {
		t.Fatalf("Unexpected work list:\ngot  %v\nwant %v", wl.Items, want)
	}
}

func TestPlanKeepsFileSymlinks(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mdl"), "x")
	symlink(t, "b.mdl", filepath.Join(root, "a.mdl"))

	wl, err := Plan(root, nil)
	if err != nil {
		t.Fatalf("Failed to plan: %v", err)
	}
	// Each name gets its own artifact, a.mdl.bz2 and b.mdl.bz2.
	if wl.Total() != 2 {
		t.Fatalf("Expected 2 items, got %v", wl.Items)
	}
}

func TestPlanRejectsBadConfig(t *testing.T) {
	root := t.TempDir()
	if _, err := Plan(root, &Config{Algorithm: "xz"}); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("Expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestPlanInvalidRoot(t *testing.T) {
	if _, err := Plan(filepath.Join(t.TempDir(), "missing"), nil); !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("Expected ErrInvalidRoot, got %v", err)
	}
}
