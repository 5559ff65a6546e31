package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// config holds the settings shared by run, exec and repl. Zero values mean
// no limit and no progress logging.
type config struct {
	Steps    int           `yaml:"steps"`
	Timeout  time.Duration `yaml:"timeout"`
	Progress int           `yaml:"progress"`
	Color    bool          `yaml:"color"`
	History  string        `yaml:"history"`
}

func loadConfig(path string) (*config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var cfg config
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *config) validate() error {
	switch {
	case c.Steps < 0:
		return errors.New("steps must not be negative")
	case c.Timeout < 0:
		return errors.New("timeout must not be negative")
	case c.Progress < 0:
		return errors.New("progress must not be negative")
	}
	return nil
}

type runFlags struct {
	config string
	quiet  bool
	set    config
}

func addRunFlags(fs *flag.FlagSet) *runFlags {
	f := new(runFlags)
	fs.StringVar(&f.config, "config", "", "read settings from a YAML `file`")
	fs.IntVar(&f.set.Steps, "steps", 0, "give up after `n` reduction steps (0: no limit)")
	fs.DurationVar(&f.set.Timeout, "timeout", 0, "give up after reducing for `duration` (0: no limit)")
	fs.IntVar(&f.set.Progress, "progress", 0, "log progress every `n` steps")
	fs.BoolVar(&f.set.Color, "color", false, "colorize printed terms")
	fs.BoolVar(&f.quiet, "q", false, "print only the program output")
	return f
}

// settings reads the configuration file, if any, and applies the flags given
// on the command line on top of it.
func (f *runFlags) settings(fs *flag.FlagSet) (config, error) {
	var cfg config
	if f.config != "" {
		c, err := loadConfig(f.config)
		if err != nil {
			return cfg, err
		}
		cfg = *c
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "steps":
			cfg.Steps = f.set.Steps
		case "timeout":
			cfg.Timeout = f.set.Timeout
		case "progress":
			cfg.Progress = f.set.Progress
		case "color":
			cfg.Color = f.set.Color
		}
	})
	return cfg, cfg.validate()
}
