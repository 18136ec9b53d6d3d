package main

import (
	"strings"
	"testing"
)

// fakeEnv builds an Environment whose process environment is the given map.
func fakeEnv(t *testing.T, vars map[string]string) (*Environment, *strings.Builder) {
	t.Helper()
	env, _, _ := testEnv()
	var stderr strings.Builder
	env.Stderr = &stderr
	env.Getenv = func(key string) string { return vars[key] }
	env.Environ = func() []string {
		kvs := make([]string, 0, len(vars))
		for k, v := range vars {
			kvs = append(kvs, k+"="+v)
		}
		return kvs
	}
	return env, &stderr
}

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env, stderr := fakeEnv(t, map[string]string{
		"MDPAGE_CONFIG":     "ci-config",
		"MDPAGE_THEME":      "monokai",
		"MDPAGE_OUTPUT_DIR": "site",
		"MDPAGE_WORKERS":    "4",
	})

	cfg := loadEnvConfig(env)
	if cfg.ConfigPath != "ci-config" || cfg.Theme != "monokai" || cfg.OutputDir != "site" || cfg.Workers != 4 {
		t.Errorf("loadEnvConfig() = %+v", cfg)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected warnings: %s", stderr.String())
	}
}

func TestLoadEnvConfig_Empty(t *testing.T) {
	t.Parallel()

	env, _ := fakeEnv(t, nil)
	cfg := loadEnvConfig(env)
	if cfg != (envConfig{}) {
		t.Errorf("loadEnvConfig() = %+v, want zero", cfg)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	t.Parallel()

	tests := []string{"abc", "-2", "1.5"}
	for _, raw := range tests {
		env, stderr := fakeEnv(t, map[string]string{"MDPAGE_WORKERS": raw})
		cfg := loadEnvConfig(env)
		if cfg.Workers != 0 {
			t.Errorf("MDPAGE_WORKERS=%q: Workers = %d, want 0", raw, cfg.Workers)
		}
		if !strings.Contains(stderr.String(), "MDPAGE_WORKERS") {
			t.Errorf("MDPAGE_WORKERS=%q: missing warning: %s", raw, stderr.String())
		}
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	env, stderr := fakeEnv(t, map[string]string{
		"MDPAGE_THEMES": "typo",
		"MDPAGE_THEME":  "github",
		"PATH":          "/usr/bin",
	})

	warnUnknownEnvVars(env)
	out := stderr.String()
	if !strings.Contains(out, "MDPAGE_THEMES") {
		t.Errorf("missing warning for MDPAGE_THEMES: %s", out)
	}
	if strings.Contains(out, "PATH") {
		t.Errorf("non-prefixed variable warned: %s", out)
	}
	if strings.Contains(out, "MDPAGE_THEME\n") {
		t.Errorf("known variable warned: %s", out)
	}
}
