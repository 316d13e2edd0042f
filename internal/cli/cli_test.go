package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/djdv/go-nru"
	"github.com/djdv/go-nru/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", configDefaults)
	t.Run("environment", configEnvironment)
	t.Run("invalid environment", configInvalidEnvironment)
	t.Run("env file", configEnvFile)
	t.Run("missing env file", missingEnvFile)
}

func configDefaults(t *testing.T) {
	cfg, err := defaultConfig()
	require.NoError(t, err)
	assert.Equal(t, workload.LoopName, cfg.pattern)
	assert.Positive(t, cfg.pages)
	assert.Positive(t, cfg.pageSize)
	assert.Positive(t, cfg.tickInterval)
	assert.LessOrEqual(t, cfg.frames, cfg.pages)
}

func configEnvironment(t *testing.T) {
	t.Setenv("NRUSIM_PAGES", "8")
	t.Setenv("NRUSIM_WRITE_RATIO", "0.5")
	t.Setenv("NRUSIM_SEED", "42")
	t.Setenv("NRUSIM_PATTERN", workload.ZipfName)
	t.Setenv("NRUSIM_STATS", "true")
	cfg, err := defaultConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.pages)
	assert.Equal(t, 0.5, cfg.writeRatio)
	assert.Equal(t, uint64(42), cfg.seed)
	assert.Equal(t, workload.ZipfName, cfg.pattern)
	assert.True(t, cfg.stats)
}

func configInvalidEnvironment(t *testing.T) {
	t.Setenv("NRUSIM_PAGES", "many")
	_, err := defaultConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NRUSIM_PAGES")
}

func configEnvFile(t *testing.T) {
	const key = "NRUSIM_TICK_INTERVAL"
	_, set := os.LookupEnv(key)
	require.False(t, set, "%s set by the caller", key)
	t.Cleanup(func() { os.Unsetenv(key) })
	name := filepath.Join(t.TempDir(), envFile)
	require.NoError(t, os.WriteFile(name, []byte(key+"=7\n"), 0o644))
	require.NoError(t, loadEnvFile(name))
	cfg, err := defaultConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.tickInterval)
}

func missingEnvFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), envFile)
	assert.NoError(t, loadEnvFile(name))
}

func TestRun(t *testing.T) {
	t.Run("report", runReport)
	t.Run("trace", runTrace)
	t.Run("no pager", runWithoutPager)
	t.Run("invalid", runInvalid)
}

func runReport(t *testing.T) {
	stdout, _, err := execute(t,
		"run",
		"--pages", "16",
		"--page-size", "64",
		"--accesses", "1000",
		"--tick-interval", "50",
		"--frames", "4",
		"--stats",
		"--log-level", "DEBUG",
	)
	require.NoError(t, err)
	for _, want := range []string{
		"reads: ",
		"ticks: 20",
		"victims from class 0 (" + nru.NotRefNotMod.String() + ")",
		"NRU stats",
		"NRU hit rate: ",
		"ARC hit rate: ",
	} {
		assert.Contains(t, stdout, want)
	}
}

func runTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace")
	_, stderr, err := execute(t,
		"run",
		"--pages", "8",
		"--page-size", "16",
		"--accesses", "100",
		"--tick-interval", "10",
		"--frames", "0",
		"--trace",
		"--trace-path", path,
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "tracing")
	content, err := os.ReadFile(path + ".csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 11, "header and one row per tick")
}

func runWithoutPager(t *testing.T) {
	stdout, _, err := execute(t,
		"run",
		"--pages", "8",
		"--accesses", "64",
		"--frames", "0",
		"--log-level", "ERROR",
	)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "hit rate")
}

func runInvalid(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
	}{
		{"pages", []string{"--pages", "0"}},
		{"page size", []string{"--page-size", "-1"}},
		{"pattern", []string{"--pattern", "fifo"}},
		{"log level", []string{"--log-level", "LOUD"}},
		{"tick interval", []string{"--tick-interval", "0"}},
		{"frames", []string{"--pages", "4", "--frames", "8"}},
		{"accesses", []string{"--accesses", "-1"}},
		{"arguments", []string{"extra"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"run", "--accesses", "16"}, test.args...)
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func execute(tb testing.TB, args ...string) (string, string, error) {
	tb.Helper()
	root, err := newRootCommand()
	require.NoError(tb, err)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err = root.Execute()
	return stdout.String(), stderr.String(), err
}
