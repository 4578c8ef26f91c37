package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samuelfneumann/gobark/agent"
)

// Environment variables which override configuration values
const (
	EnvEpisodes        = "GOBARK_EPISODES"
	EnvMaxEpisodeSteps = "GOBARK_MAX_EPISODE_STEPS"
	EnvSeed            = "GOBARK_SEED"
	EnvStepTime        = "GOBARK_STEP_TIME"
	EnvDiscount        = "GOBARK_DISCOUNT"
	EnvFunctors        = "GOBARK_FUNCTORS"
	EnvAgent           = "GOBARK_AGENT"
	EnvOutputDir       = "GOBARK_OUTPUT_DIR"
	EnvSQLite          = "GOBARK_SQLITE"
)

// readEnv reads the variables of every existing file in files. Earlier
// files take precedence over later ones.
func readEnv(files []string) (map[string]string, error) {
	vars := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		read, err := godotenv.Read(files[i])
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("read env file %v: %w", files[i], err)
		}
		for k, v := range read {
			vars[k] = v
		}
	}
	return vars, nil
}

// applyEnv overrides fields of c with the GOBARK_* variables set in
// the process environment or in vars
func (c *Config) applyEnv(vars map[string]string) error {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvEpisodes, &c.Episodes},
		{EnvMaxEpisodeSteps, &c.MaxEpisodeSteps},
	}
	for _, i := range ints {
		if v, ok := lookup(i.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%v: %w", i.key, err)
			}
			*i.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvStepTime, &c.StepTime},
		{EnvDiscount, &c.Discount},
	}
	for _, f := range floats {
		if v, ok := lookup(f.key); ok {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%v: %w", f.key, err)
			}
			*f.dst = x
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%v: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvFunctors); ok {
		c.Functors = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Functors = append(c.Functors, name)
			}
		}
	}
	if v, ok := lookup(EnvAgent); ok {
		c.Agent.Type = agent.Type(v)
	}
	if v, ok := lookup(EnvOutputDir); ok {
		c.Output.Dir = v
	}
	if v, ok := lookup(EnvSQLite); ok {
		c.Output.SQLite = v
	}
	return nil
}
