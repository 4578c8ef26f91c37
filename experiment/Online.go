package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/samuelfneumann/gobark/agent"
	env "github.com/samuelfneumann/gobark/environment"
	"github.com/samuelfneumann/gobark/experiment/tracker"
	ts "github.com/samuelfneumann/gobark/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	episodes        int
	currentEpisodes int
	maxEpisodeSteps int
	trackers        []tracker.Tracker
	logger          *log.Logger
	onEpisode       func(EpisodeSummary)
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines how
// many episodes the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, episodes int,
	t ...tracker.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		episodes:    episodes,
		trackers:    t,
		logger:      log.New(io.Discard, "", 0),
	}
}

// SetLogger sets the logger which receives one line per episode
func (o *Online) SetLogger(l *log.Logger) {
	o.logger = l
}

// SetMaxEpisodeSteps caps the number of steps of each episode. A cap
// of zero or less leaves episodes uncapped, so that they end only when
// the environment ends them.
func (o *Online) SetMaxEpisodeSteps(steps int) {
	o.maxEpisodeSteps = steps
}

// OnEpisode registers a function that is called after every episode
func (o *Online) OnEpisode(f func(EpisodeSummary)) {
	o.onEpisode = f
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode(ctx context.Context) (EpisodeSummary, error) {
	summary := EpisodeSummary{Episode: o.currentEpisodes}

	step, err := o.Environment.Reset()
	if err != nil {
		return summary, fmt.Errorf("runEpisode: %w", err)
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return summary, fmt.Errorf("runEpisode: %w", err)
	}
	o.track(step)

	// Run the next timestep
	for !step.Last() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return summary, fmt.Errorf("runEpisode: step %v: %w",
				summary.Steps+1, err)
		}
		if o.maxEpisodeSteps > 0 && step.Number >= o.maxEpisodeSteps &&
			!step.Last() {
			step.SetEnd(ts.Timeout)
		}

		// Cache the environment step in each Tracker
		o.track(step)
		summary.Steps++
		summary.Return += step.Reward

		// Observe the timestep
		if err := o.Agent.Observe(action, step); err != nil {
			return summary, fmt.Errorf("runEpisode: %w", err)
		}
	}
	o.Agent.EndEpisode()

	summary.End = step.EndType()
	for name, v := range step.Info {
		if b, ok := v.(bool); ok && b {
			summary.Terminated = append(summary.Terminated, name)
		}
	}
	sort.Strings(summary.Terminated)

	o.currentEpisodes++
	o.logger.Printf("episode %v: steps=%v return=%.4f end=%v signals=%v",
		summary.Episode, summary.Steps, summary.Return, summary.End,
		summary.Terminated)
	if o.onEpisode != nil {
		o.onEpisode(summary)
	}
	return summary, nil
}

// Run runs the entire experiment for all episodes. If ctx is cancelled
// Run returns after the current step with the context's error.
func (o *Online) Run(ctx context.Context) error {
	for o.currentEpisodes < o.episodes {
		if _, err := o.RunEpisode(ctx); err != nil {
			if errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded) {
				o.logger.Printf("stopped after %v episodes: %v",
					o.currentEpisodes, err)
			}
			return err
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	var errs []error
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
