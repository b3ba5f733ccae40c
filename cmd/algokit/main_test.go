package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/internal/config"
)

func writeCases(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestRunPass(t *testing.T) {
	path := writeCases(t, `case "coins" {
  solver = "coin-change"
  ints   = [1, 2, 5]
  target = 11
  expect = "3"
}`)
	var out bytes.Buffer
	err := run(&out, []string{"-log-level", "error", path})
	require.NoError(t, err)
	assert.Equal(t, "coins\tcoin-change\t3\tpass\ntotal=1 pass=1 fail=0 done=0 error=0 skipped=0\n", out.String())
}

func TestRunMismatch(t *testing.T) {
	path := writeCases(t, `case "coins" {
  solver = "coin-change"
  ints   = [1, 2, 5]
  target = 11
  expect = "4"
}`)
	var out bytes.Buffer
	err := run(&out, []string{"-log-level", "error", "-cases", path})
	assert.ErrorIs(t, err, errCasesFailed)
	assert.Contains(t, out.String(), "\tfail\n")
}

func TestRunUsage(t *testing.T) {
	t.Setenv(config.EnvCases, "")
	var out bytes.Buffer
	require.NoError(t, run(&out, nil))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunBadFlags(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{"-workers", "0", "cases.hcl"})
	var exitErr *config.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{"-log-level", "error", filepath.Join(t.TempDir(), "absent.hcl")})
	assert.Error(t, err)
}
