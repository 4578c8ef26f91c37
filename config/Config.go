// Package config provides the JSON serializable configuration of an
// experiment: which functors the evaluator runs and with which
// parameters, the scenario, the agent, and where results are saved.
// Configurations start from Default, are overlaid by a JSON file, and
// finally by GOBARK_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/gobark/agent"
	env "github.com/samuelfneumann/gobark/environment"
	"github.com/samuelfneumann/gobark/evaluator"
)

// Output configures where experiment results are saved. Empty paths
// disable the corresponding output. Relative paths are relative to
// Dir.
type Output struct {
	Dir     string `json:"Dir"`
	Returns string `json:"Returns"`
	Lengths string `json:"Lengths"`
	SQLite  string `json:"SQLite"`
	Plot    string `json:"Plot"`
}

// Path returns p relative to the output directory, or the empty string
// if p is empty
func (o Output) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Dir, p)
}

// Config implements a configuration of an experiment
type Config struct {
	// Functors names the functors of the evaluator in evaluation order
	Functors []string         `json:"Functors"`
	Params   evaluator.Params `json:"Params"`

	Scenario         env.Highway  `json:"Scenario"`
	ObservedAgents   int          `json:"ObservedAgents"`
	ObservationRange float64      `json:"ObservationRange"`
	Agent            agent.Config `json:"Agent"`

	Episodes        int     `json:"Episodes"`
	MaxEpisodeSteps int     `json:"MaxEpisodeSteps"`
	StepTime        float64 `json:"StepTime"`
	Discount        float64 `json:"Discount"`
	Seed            uint64  `json:"Seed"`

	Output Output `json:"Output"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Functors:         evaluator.DefaultFunctorNames(),
		Params:           evaluator.DefaultParams(),
		Scenario:         env.DefaultHighway(),
		ObservedAgents:   2,
		ObservationRange: 50,
		Agent:            agent.Config{Type: agent.RandomAgent},
		Episodes:         10,
		StepTime:         0.2,
		Discount:         0.99,
		Seed:             0,
		Output: Output{
			Dir:     ".",
			Returns: "return.bin",
			Lengths: "length.bin",
			Plot:    "returns.png",
		},
	}
}

// Load returns the default configuration overlaid by the JSON file at
// path, if path is not empty, and then by GOBARK_* environment
// variables. Variables are looked up in the process environment first
// and then in envFiles, which are read with godotenv. Missing env
// files are ignored.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("load: %w", err)
		}
		defer file.Close()

		if err := Decode(file, &c); err != nil {
			return Config{}, fmt.Errorf("load %v: %w", path, err)
		}
	}

	vars, err := readEnv(envFiles)
	if err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}
	if err := c.applyEnv(vars); err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}

	return c, c.Validate()
}

// Decode decodes JSON from r over c. Keys absent from the JSON keep
// their values in c. An empty reader leaves c unchanged.
func Decode(r io.Reader, c *Config) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate returns an error if the configuration cannot be run
func (c Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("validate: need at least one episode, have %v",
			c.Episodes)
	}
	if c.StepTime <= 0 {
		return fmt.Errorf("validate: step time must be positive, have %v",
			c.StepTime)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v out of range [0, 1]",
			c.Discount)
	}
	if c.ObservedAgents < 0 || c.ObservationRange <= 0 {
		return fmt.Errorf("validate: invalid observation of %v agents "+
			"within %v", c.ObservedAgents, c.ObservationRange)
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if err := c.Scenario.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if _, err := evaluator.NewFunctors(c.Functors, c.Params); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	actions := env.NewBoundedSpec(env.Action, env.DefaultActionBounds())
	if _, err := agent.New(c.Agent, actions, c.Seed); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// NewEvaluator returns the general evaluator described by c
func (c Config) NewEvaluator() (*evaluator.General, error) {
	functors, err := evaluator.NewFunctors(c.Functors, c.Params)
	if err != nil {
		return nil, err
	}
	return evaluator.NewGeneral(functors, nil), nil
}

// NewRuntime returns the environment described by c. The seed of the
// start state distribution is c.Seed.
func (c Config) NewRuntime() (*env.Runtime, error) {
	general, err := c.NewEvaluator()
	if err != nil {
		return nil, fmt.Errorf("newRuntime: %w", err)
	}

	starter := env.NewUniformStarter(c.Scenario.StartBounds(), c.Seed)
	observer := env.NewNearestAgents(c.ObservedAgents, c.ObservationRange)
	return env.NewRuntime(c.Scenario, starter, observer, general,
		c.StepTime, c.Discount)
}

// NewAgent returns the agent described by c for the environment e
func (c Config) NewAgent(e env.Environment) (agent.Agent, error) {
	return agent.New(c.Agent, e.ActionSpec(), c.Seed)
}
