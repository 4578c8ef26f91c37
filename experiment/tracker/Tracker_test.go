package tracker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	ts "github.com/samuelfneumann/gobark/timestep"
	"github.com/samuelfneumann/gobark/world"
)

// episode returns the timesteps of an episode with the given rewards
// on its non-first steps
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0.99, nil, 0, nil)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		info := world.Signals{"step_count": float64(i + 1)}
		steps = append(steps, ts.New(stepType, r, 0.99, nil, i+1, info))
	}
	return steps
}

func track(t Tracker, episodes ...[]ts.TimeStep) {
	for _, ep := range episodes {
		for _, step := range ep {
			t.Track(step)
		}
	}
}

func TestReturn(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "return.bin")
	r := NewReturn(filename)

	track(r, episode(1, 2, 3), episode(-1))
	// An unfinished episode is not recorded
	r.Track(ts.New(ts.First, 0, 0.99, nil, 0, nil))

	want := []float64{6, -1}
	if diff := cmp.Diff(want, r.Returns()); diff != "" {
		t.Errorf("returns mismatch (-want +got):\n%s", diff)
	}

	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadData(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded returns mismatch (-want +got):\n%s", diff)
	}
}

func TestReturnPanicsOnGap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 0.99, nil, 0, nil))
	r.Track(ts.New(ts.Mid, 0, 0.99, nil, 2, nil))
}

func TestEpisodeLength(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "length.bin")
	e := NewEpisodeLength(filename)

	track(e, episode(1, 2, 3), episode(-1), episode(0, 0))

	want := []float64{3, 1, 2}
	if diff := cmp.Diff(want, e.Lengths()); diff != "" {
		t.Errorf("lengths mismatch (-want +got):\n%s", diff)
	}
	if err := e.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadData(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDataMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "steps.db")

	s, err := NewSQLite(ctx, path)
	if err != nil {
		t.Fatalf("newSQLite: %v", err)
	}
	defer s.Close()

	track(s, episode(1, 2))
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Episodes keep counting across saves
	track(s, episode(-1))
	if err := s.SaveContext(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	records, err := s.Steps(ctx, s.RunID())
	if err != nil {
		t.Fatalf("steps: %v", err)
	}

	type row struct {
		Episode, Step int
		Reward        float64
		Last          bool
	}
	want := []row{
		{0, 0, 0, false},
		{0, 1, 1, false},
		{0, 2, 2, true},
		{1, 0, 0, false},
		{1, 1, -1, true},
	}
	got := make([]row, len(records))
	for i, r := range records {
		got[i] = row{r.Episode, r.Step, r.Reward, r.Last}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if count := records[2].Info["step_count"]; count != 2.0 {
		t.Errorf("want step_count 2 in info, got %v", count)
	}
	if records[2].EndType != ts.TerminalStateReached.String() {
		t.Errorf("want end type %v, got %v", ts.TerminalStateReached,
			records[2].EndType)
	}

	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if diff := cmp.Diff([]string{s.RunID()}, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteSharedDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "steps.db")

	var ids []string
	for i := 0; i < 2; i++ {
		s, err := NewSQLite(ctx, path)
		if err != nil {
			t.Fatalf("newSQLite: %v", err)
		}
		track(s, episode(1))
		if err := s.Save(); err != nil {
			t.Fatalf("save: %v", err)
		}
		ids = append(ids, s.RunID())
		if err := s.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
	if ids[0] == ids[1] {
		t.Fatal("expected distinct run ids")
	}

	s, err := NewSQLite(ctx, path)
	if err != nil {
		t.Fatalf("newSQLite: %v", err)
	}
	defer s.Close()
	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if diff := cmp.Diff(ids, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Save(); err == nil {
		t.Error("expected error saving to a closed tracker")
	}
}

func TestPlotReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "returns.png")
	if err := PlotReturns(path, []float64{0, 1, -1, 2, 0.5}, 2); err != nil {
		t.Fatalf("plotReturns: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected non-empty plot at %v: %v", path, err)
	}
}

func TestRunningMean(t *testing.T) {
	got := RunningMean([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("running mean mismatch (-want +got):\n%s", diff)
	}
}
