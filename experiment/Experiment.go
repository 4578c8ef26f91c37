// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"

	"github.com/samuelfneumann/gobark/experiment/tracker"
	ts "github.com/samuelfneumann/gobark/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run all episodes until the episode limit is reached or the context
// is cancelled. The RunEpisode() function will run a single episode.
//
// Experiments send each TimeStep to Trackers using the Tracker's
// Track() method. The Tracker then determines which data from the
// TimeStep it caches and saves. New Trackers can be registered with an
// Experiment through the constructor or through an Experiment's
// Register() function.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode(ctx context.Context) (EpisodeSummary, error)

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running) experiment.
	// Useful if you want to track data only after a specified event.
	Register(t tracker.Tracker)
}

// EpisodeSummary summarizes a finished (or cancelled) episode
type EpisodeSummary struct {
	Episode int
	Steps   int
	Return  float64
	End     ts.EndType

	// Terminated lists the boolean signals that were set on the last
	// step, such as "collision" or "goal_reached"
	Terminated []string
}
