package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/internal/config"
)

func TestDefault_NeedsCases(t *testing.T) {
	cfg := config.Default()
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "casespath is required")

	cfg.CasesPath = "cases.hcl"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := config.Config{CasesPath: "x.hcl", Workers: 0, LogLevel: "loud", Env: "staging"}
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "workers must be at least 1")
	assert.Contains(t, err.Error(), "loglevel must be one of: debug info warn error")
	assert.Contains(t, err.Error(), "env must be one of: development production")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(config.EnvCases, "env.hcl")
	t.Setenv(config.EnvWorkers, "16")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvEnv, "production")
	t.Setenv(config.EnvFailFast, "yes")

	cfg := config.Default()
	config.FromEnv(&cfg)
	assert.Equal(t, config.Config{
		CasesPath: "env.hcl",
		Workers:   16,
		LogLevel:  "debug",
		Env:       config.Production,
		FailFast:  true,
	}, cfg)
}

func TestFromEnv_BadIntKeepsDefault(t *testing.T) {
	t.Setenv(config.EnvWorkers, "many")
	cfg := config.Default()
	config.FromEnv(&cfg)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algokit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases: file.hcl\nworkers: 2\n"), 0o600))

	cfg := config.Default()
	require.NoError(t, config.LoadFile(path, &cfg))
	assert.Equal(t, "file.hcl", cfg.CasesPath)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel, "absent keys keep their value")

	require.NoError(t, os.WriteFile(path, []byte("threads: 2\n"), 0o600))
	assert.Error(t, config.LoadFile(path, &cfg), "unknown keys are rejected")

	assert.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
}

func TestParse_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algokit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases: file.hcl\nworkers: 2\nlog_level: warn\n"), 0o600))
	t.Setenv(config.EnvWorkers, "8")

	var out bytes.Buffer
	cfg, exit, err := config.Parse([]string{"-config", path, "-log-level", "error"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "file.hcl", cfg.CasesPath, "from file")
	assert.Equal(t, 8, cfg.Workers, "environment beats file")
	assert.Equal(t, "error", cfg.LogLevel, "flag beats file")

	cfg, _, err = config.Parse([]string{"-config", path, "-workers", "3", "other.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers, "flag beats environment")
	assert.Equal(t, "other.hcl", cfg.CasesPath, "positional argument wins")
}

func TestParse_ExitPaths(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := config.Parse(nil, &out)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")

	_, exit, err = config.Parse([]string{"-h"}, &out)
	assert.NoError(t, err)
	assert.True(t, exit)

	_, _, err = config.Parse([]string{"-workers", "0", "cases.hcl"}, &out)
	var exitErr *config.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	_, _, err = config.Parse([]string{"-nope"}, &out)
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
