package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/common"
	"github.com/milk9111/colourblind/ecs/component"
)

func TestLoadPlayerSpec(t *testing.T) {
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = "prefabs" })

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Colour != colour.Red || spec.Collider.Width != 24 || spec.Spawn.Col != 2 {
		t.Fatalf("unexpected spec %+v", spec)
	}
	defs := spec.Animation.AnimationDefs()
	if _, err := component.NewAnimation(nil, defs, spec.Animation.Current); err != nil {
		t.Fatalf("embedded animation invalid: %v", err)
	}
}

func TestDiskOverride(t *testing.T) {
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = "prefabs" })

	body := []byte("name: player\ncolour: blue\nanimation:\n  current: stand\n  defs:\n    stand: {frame_count: 1, frame_w: 32, frame_h: 64}\n    jump: {frame_count: 1, frame_w: 16, frame_h: 64}\n")
	if err := os.WriteFile(filepath.Join(Dir, "player.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Colour != colour.Blue {
		t.Fatalf("disk copy not preferred, colour=%v", spec.Colour)
	}
	for _, name := range []string{"player.yaml", "prefabs/player.yaml", `prefabs\player.yaml`} {
		if !OnDisk(name) {
			t.Fatalf("%s should resolve to the disk copy", name)
		}
	}
	if OnDisk("enemy.yaml") {
		t.Fatalf("missing prefab reported on disk")
	}

	_, err = component.NewAnimation(nil, spec.Animation.AnimationDefs(), "stand")
	var cfgErr *common.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("mismatched frame sizes should be a ConfigError, got %v", err)
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(target, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "game.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for yaml write")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	for _, name := range w.Poll() {
		if filepath.Ext(name) != ".yaml" {
			t.Fatalf("non-yaml event %s", name)
		}
	}
}
