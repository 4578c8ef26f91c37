package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gobark/config"
	"github.com/samuelfneumann/gobark/experiment/tracker"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	c := config.Default()
	c.Episodes = 2
	c.MaxEpisodeSteps = 5
	c.Output.Dir = dir
	c.Output.SQLite = "steps.db"
	quiet = true

	if err := run(context.Background(), c, false); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range []string{c.Output.Returns, c.Output.Lengths,
		c.Output.SQLite, c.Output.Plot} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %v: %v", name, err)
		}
	}

	lengths, err := tracker.LoadData(filepath.Join(dir, c.Output.Lengths))
	if err != nil {
		t.Fatalf("load lengths: %v", err)
	}
	if len(lengths) != 2 {
		t.Errorf("want 2 episode lengths, got %v", lengths)
	}
	for _, l := range lengths {
		if l < 1 || l > 5 {
			t.Errorf("episode length %v outside [1, 5]", l)
		}
	}
}

func TestRunWithProgress(t *testing.T) {
	c := config.Default()
	c.Episodes = 3
	c.MaxEpisodeSteps = 4
	c.Output.Dir = t.TempDir()
	quiet = true

	if err := run(context.Background(), c, true); err != nil {
		t.Fatalf("run with progress bar: %v", err)
	}

	lengths, err := tracker.LoadData(filepath.Join(c.Output.Dir,
		c.Output.Lengths))
	if err != nil {
		t.Fatalf("load lengths: %v", err)
	}
	if len(lengths) != 3 {
		t.Errorf("want 3 episode lengths, got %v", lengths)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "world.png")

	cmd := GetRootCommand()
	cmd.SetArgs([]string{"render", "--quiet", "--env", "",
		"--steps", "3", "--out", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Errorf("expected rendered image at %v: %v", out, err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	c := config.Default()
	c.Episodes = 0
	if err := run(context.Background(), c, false); err == nil {
		t.Error("expected error for invalid configuration")
	}
}
