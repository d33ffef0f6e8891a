package main

import (
	"fmt"

	"github.com/alnah/go-md2cv/internal/yamlutil"
)

// runConfig prints the effective configuration: config file, then
// environment overrides, as YAML.
func runConfig(args []string, env *Environment) error {
	flags, _, err := parseConfigFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.config, flags.quiet, env.Stderr)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
