package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/djdv/go-nru"
	"github.com/djdv/go-nru/internal/trace"
	"github.com/djdv/go-nru/internal/workload"
	"github.com/spf13/cobra"
)

func newRunCommand(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and report victims and hit rates.",
		Long: `Run generates an access pattern, replays it against NRU bookkeeping ` +
			`ticking the clock periodically, then compares NRU and ARC ` +
			`resident sets of the same size over the same accesses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.pages, "pages", cfg.pages, "number of pages")
	flags.IntVar(&cfg.pageSize, "page-size", cfg.pageSize, "bytes per page")
	flags.IntVar(&cfg.accesses, "accesses", cfg.accesses, "number of accesses to generate")
	flags.IntVar(&cfg.tickInterval, "tick-interval", cfg.tickInterval, "accesses between clock ticks")
	flags.IntVar(&cfg.frames, "frames", cfg.frames, "resident frames for the pager comparison; 0 disables it")
	flags.Float64Var(&cfg.writeRatio, "write-ratio", cfg.writeRatio, "fraction of accesses which are writes")
	flags.Uint64Var(&cfg.seed, "seed", cfg.seed, "seed for workload generation and victim selection")
	flags.StringVar(&cfg.pattern, "pattern", cfg.pattern, fmt.Sprintf(
		"access pattern: %s, %s, %s, or %s",
		workload.SequentialName, workload.LoopName,
		workload.ZipfName, workload.UniformName,
	))
	flags.BoolVar(&cfg.trace, "trace", cfg.trace, "record every tick to a CSV file")
	flags.StringVar(&cfg.tracePath, "trace-path", cfg.tracePath, "trace file name without extension; generated if empty")
	flags.BoolVar(&cfg.stats, "stats", cfg.stats, "print the final NRU classes")
	flags.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "DEBUG, INFO, WARN, or ERROR")
	return cmd
}

func run(cfg config, stdout, stderr io.Writer) error {
	log, err := newLogger(stderr, cfg.logLevel)
	if err != nil {
		return err
	}
	if cfg.accesses < 0 {
		return fmt.Errorf("accesses must be >=0 but %d was requested", cfg.accesses)
	}
	memory, err := nru.NewMemory(cfg.pages, cfg.pageSize)
	if err != nil {
		return err
	}
	hotPages := max(cfg.frames/2, 1)
	pattern, err := workload.ByName(cfg.pattern, hotPages)
	if err != nil {
		return err
	}
	var (
		rng      = rand.New(rand.NewPCG(cfg.seed, cfg.seed))
		pages    = pattern.Pages(rng, cfg.pages, cfg.accesses)
		accesses = workload.Accesses(rng, pages, cfg.pageSize, cfg.writeRatio)
	)
	log.Info("generated workload",
		"pattern", pattern.Name,
		"pages", cfg.pages,
		"page_size", cfg.pageSize,
		"accesses", len(accesses),
	)
	classifier := nru.NewClassifier(nru.WithRand(victimRNG(cfg.seed)))
	if err := simulate(cfg, log, memory, classifier, accesses, stdout); err != nil {
		return err
	}
	if cfg.stats {
		if err := classifier.Classify(memory.Table()); err != nil {
			return err
		}
		if _, err := classifier.WriteTo(stdout); err != nil {
			return err
		}
	}
	if cfg.frames == 0 {
		return nil
	}
	return comparePagers(cfg, log, accesses, stdout)
}

func victimRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, ^seed))
}

func simulate(
	cfg config, log *slog.Logger,
	memory *nru.Memory, classifier *nru.Classifier,
	accesses []workload.Access, stdout io.Writer,
) error {
	options := []workload.DriverOption{workload.WithLogger(log)}
	if cfg.trace {
		writer := trace.NewCSVWriter(cfg.tracePath)
		if err := writer.Init(); err != nil {
			return err
		}
		defer writer.Close()
		log.Info("tracing", "path", writer.Path())
		options = append(options, workload.WithRecorder(writer))
	}
	driver, err := workload.NewDriver(
		memory, classifier,
		cfg.tickInterval, options...,
	)
	if err != nil {
		return err
	}
	summary, err := driver.Run(accesses)
	if err != nil {
		return err
	}
	log.Info("simulation complete",
		"reads", summary.Reads,
		"writes", summary.Writes,
		"ticks", summary.Ticks,
	)
	fmt.Fprintf(stdout, "reads: %d, writes: %d, ticks: %d\n",
		summary.Reads, summary.Writes, summary.Ticks)
	for class, count := range summary.Victims {
		fmt.Fprintf(stdout, "victims from class %d (%s): %d\n",
			class, nru.State(class), count)
	}
	return nil
}

func comparePagers(
	cfg config, log *slog.Logger,
	accesses []workload.Access, stdout io.Writer,
) error {
	nruPager, err := workload.NewNRUPager(
		cfg.pages, cfg.frames, cfg.tickInterval,
		nru.WithRand(victimRNG(cfg.seed)),
	)
	if err != nil {
		return err
	}
	arcPager, err := workload.NewARCPager(cfg.frames)
	if err != nil {
		return err
	}
	for _, pager := range []struct {
		name string
		workload.Pager
	}{
		{"NRU", nruPager},
		{"ARC", arcPager},
	} {
		result, err := workload.Simulate(pager, accesses, cfg.pageSize)
		if err != nil {
			return fmt.Errorf("%s: %w", pager.name, err)
		}
		log.Info("pager complete",
			"policy", pager.name,
			"frames", cfg.frames,
			"hits", result.Hits,
			"misses", result.Misses,
		)
		fmt.Fprintf(stdout, "%s hit rate: %.2f%% (%d frames)\n",
			pager.name, result.HitRate(), cfg.frames)
	}
	return nil
}
