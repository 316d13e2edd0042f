package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/djdv/go-nru/internal/workload"
	"github.com/joho/godotenv"
)

type config struct {
	pages, pageSize,
	accesses, tickInterval,
	frames int
	writeRatio float64
	seed       uint64
	pattern,
	tracePath,
	logLevel string
	trace, stats bool
}

const (
	envPrefix = "NRUSIM_"
	envFile   = ".env"
)

// loadEnvFile adds the variables of filename to the environment.
// Variables which are already set take precedence.
// A missing file is not an error.
func loadEnvFile(filename string) error {
	err := godotenv.Load(filename)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", filename, err)
}

// defaultConfig returns the built-in settings,
// overridden by any NRUSIM_* environment variables.
func defaultConfig() (config, error) {
	cfg := config{
		pages:        64,
		pageSize:     4096,
		accesses:     1 << 16,
		tickInterval: 256,
		frames:       16,
		writeRatio:   0.3,
		seed:         1,
		pattern:      workload.LoopName,
		logLevel:     "INFO",
	}
	for _, setting := range []struct {
		name  string
		parse func(string) error
	}{
		{"PAGES", intSetting(&cfg.pages)},
		{"PAGE_SIZE", intSetting(&cfg.pageSize)},
		{"ACCESSES", intSetting(&cfg.accesses)},
		{"TICK_INTERVAL", intSetting(&cfg.tickInterval)},
		{"FRAMES", intSetting(&cfg.frames)},
		{"WRITE_RATIO", floatSetting(&cfg.writeRatio)},
		{"SEED", uintSetting(&cfg.seed)},
		{"PATTERN", stringSetting(&cfg.pattern)},
		{"TRACE", boolSetting(&cfg.trace)},
		{"TRACE_PATH", stringSetting(&cfg.tracePath)},
		{"STATS", boolSetting(&cfg.stats)},
		{"LOG_LEVEL", stringSetting(&cfg.logLevel)},
	} {
		key := envPrefix + setting.name
		value, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := setting.parse(value); err != nil {
			return cfg, fmt.Errorf("%s: %w", key, err)
		}
	}
	return cfg, nil
}

func intSetting(target *int) func(string) error {
	return func(value string) (err error) {
		*target, err = strconv.Atoi(value)
		return
	}
}

func uintSetting(target *uint64) func(string) error {
	return func(value string) (err error) {
		*target, err = strconv.ParseUint(value, 10, 64)
		return
	}
}

func floatSetting(target *float64) func(string) error {
	return func(value string) (err error) {
		*target, err = strconv.ParseFloat(value, 64)
		return
	}
}

func boolSetting(target *bool) func(string) error {
	return func(value string) (err error) {
		*target, err = strconv.ParseBool(value)
		return
	}
}

func stringSetting(target *string) func(string) error {
	return func(value string) error {
		*target = value
		return nil
	}
}
