package experiment

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/agent"
	env "github.com/samuelfneumann/gobark/environment"
	"github.com/samuelfneumann/gobark/evaluator"
	"github.com/samuelfneumann/gobark/experiment/tracker"
	ts "github.com/samuelfneumann/gobark/timestep"
)

func newRuntime(t *testing.T, h env.Highway) *env.Runtime {
	t.Helper()

	general, err := evaluator.NewDefaultGeneral(evaluator.DefaultParams())
	if err != nil {
		t.Fatalf("could not create evaluator: %v", err)
	}
	r, err := env.NewRuntime(h, env.NewUniformStarter(h.StartBounds(), 1),
		env.NewNearestAgents(1, 50), general, 0.2, 0.99)
	if err != nil {
		t.Fatalf("could not create runtime: %v", err)
	}
	return r
}

func TestOnlineRun(t *testing.T) {
	h := env.DefaultHighway()
	h.NumOthers = 0
	r := newRuntime(t, h)

	dir := t.TempDir()
	returns := tracker.NewReturn(filepath.Join(dir, "return.bin"))
	lengths := tracker.NewEpisodeLength(filepath.Join(dir, "length.bin"))

	var buf bytes.Buffer
	o := NewOnline(r, agent.NewConstant(mat.NewVecDense(2, nil)), 3,
		returns)
	o.Register(lengths)
	o.SetLogger(log.New(&buf, "", 0))
	o.SetMaxEpisodeSteps(5)

	var summaries []EpisodeSummary
	o.OnEpisode(func(s EpisodeSummary) { summaries = append(summaries, s) })

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := o.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	if diff := cmp.Diff([]float64{5, 5, 5}, lengths.Lengths()); diff != "" {
		t.Errorf("lengths mismatch (-want +got):\n%s", diff)
	}
	if got := len(returns.Returns()); got != 3 {
		t.Errorf("want 3 returns, got %v", got)
	}
	for i, s := range summaries {
		if s.Episode != i || s.End != ts.Timeout {
			t.Errorf("summary %v: unexpected %+v", i, s)
		}
		if s.Return != returns.Returns()[i] {
			t.Errorf("summary %v: return %v does not match tracked %v", i,
				s.Return, returns.Returns()[i])
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "episode 0:") {
		t.Errorf("unexpected log output:\n%v", buf.String())
	}

	saved, err := tracker.LoadData(filepath.Join(dir, "return.bin"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(returns.Returns(), saved); diff != "" {
		t.Errorf("saved returns mismatch (-want +got):\n%s", diff)
	}
}

func TestOnlineTerminalSignals(t *testing.T) {
	h := env.DefaultHighway()
	h.NumOthers = 1
	h.Spacing = 3
	r := newRuntime(t, h)

	o := NewOnline(r, agent.NewConstant(mat.NewVecDense(2, nil)), 1)
	s, err := o.RunEpisode(context.Background())
	if err != nil {
		t.Fatalf("runEpisode: %v", err)
	}
	if s.Steps != 1 || s.End != ts.TerminalStateReached {
		t.Errorf("expected collision on the first step, got %+v", s)
	}
	if diff := cmp.Diff([]string{"collision"}, s.Terminated); diff != "" {
		t.Errorf("terminated signals mismatch (-want +got):\n%s", diff)
	}
}

func TestOnlineCancelled(t *testing.T) {
	h := env.DefaultHighway()
	h.NumOthers = 0
	r := newRuntime(t, h)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOnline(r, agent.NewConstant(mat.NewVecDense(2, nil)), 10)
	if err := o.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
