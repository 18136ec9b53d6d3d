package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Precedence: flags > environment > config file.
type envConfig struct {
	ConfigPath string // MDPAGE_CONFIG: config file name or path
	Theme      string // MDPAGE_THEME: highlight theme
	OutputDir  string // MDPAGE_OUTPUT_DIR: default output directory
	Workers    int    // MDPAGE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDPAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDPAGE_CONFIG":     true,
	"MDPAGE_THEME":      true,
	"MDPAGE_OUTPUT_DIR": true,
	"MDPAGE_WORKERS":    true,
}

// loadEnvConfig reads MDPAGE_* variables, warning on unknown names and
// unparsable values rather than failing: environment overrides are a
// convenience, not a contract.
func loadEnvConfig(env *Environment) envConfig {
	warnUnknownEnvVars(env)

	cfg := envConfig{
		ConfigPath: env.Getenv("MDPAGE_CONFIG"),
		Theme:      env.Getenv("MDPAGE_THEME"),
		OutputDir:  env.Getenv("MDPAGE_OUTPUT_DIR"),
	}

	if raw := env.Getenv("MDPAGE_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fmt.Fprintf(env.Stderr, "Warning: ignoring invalid MDPAGE_WORKERS=%q\n", raw)
		} else {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars reports MDPAGE_* variables that are not recognized,
// catching typos like MDPAGE_THEMES.
func warnUnknownEnvVars(env *Environment) {
	for _, kv := range env.Environ() {
		name, _, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(name, "MDPAGE_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(env.Stderr, "Warning: unknown environment variable %s\n", name)
		}
	}
}
