package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/nao1215/fangscan/internal/config"
	"github.com/nao1215/fangscan/internal/log"
	"github.com/nao1215/fangscan/internal/model"
	"github.com/nao1215/fangscan/internal/report"
	"github.com/nao1215/fangscan/internal/scan"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [low] [high]",
		Short: "Scan a numeric range for vampire numbers",
		Long: `Scan searches the inclusive range [low, high] for vampire numbers.

A vampire number factors into two fangs of half its digit length whose
combined digits are a rearrangement of the number's own digits. For every
vampire number found, scan prints one line per fang pair:

  <number> <fang1> <fang2>

Fangs are printed smaller first, numbers in ascending order. The range is
split into chunks scanned in parallel; output order never depends on which
chunk finishes first, so repeated runs produce byte-identical output.

Examples:
  # Scan all four-digit numbers
  fangscan scan 1000 9999

  # Scan a large range with explicit tuning
  fangscan scan 1000000 99999999 --chunk-size 10000 --workers 8

  # Scan a range defined in the configuration file
  fangscan scan --range four-digit

  # Human-readable summary instead of result lines
  fangscan scan --summary 100000 999999

  # Markdown report written to a file
  fangscan scan --markdown -o report.md 1000 9999

Configuration file (.fangscan) example:
  defaults:
    chunkSize: 1000
    workers: 4
  ranges:
    four-digit:
      low: 1000
      high: 9999
    six-digit:
      low: 100000
      high: 999999
      chunkSize: 5000`,
		Args: cobra.MaximumNArgs(2),
		RunE: runScanCmd,
	}

	// Scan tuning flags
	cmd.Flags().IntP("chunk-size", "s", config.DefaultChunkSize,
		"Maximum count of numbers per work chunk")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers(),
		"Number of chunks scanned concurrently (defaults to the CPU count)")

	// Range selection
	cmd.Flags().StringP("range", "r", "",
		"Scan a named range from the configuration file instead of positional bounds")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .fangscan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --summary)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --summary)")
	cmd.Flags().BoolP("summary", "S", false,
		"Output human-readable summary report instead of result lines")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags and positional bounds
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging. Progress goes to stderr so stdout stays
	// reserved for the report.
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and positional
// arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.ChunkSize, err = cmd.Flags().GetInt("chunk-size")
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}

	cfg.RangeName, err = cmd.Flags().GetString("range")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load named ranges and defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Ranges, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.Ranges = &config.File{
			Ranges: make(map[string]config.RangeConfig),
		}
	}

	// File-level defaults apply only where the user left the flag untouched
	if cfg.Ranges.Defaults.ChunkSize > 0 && !cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = cfg.Ranges.Defaults.ChunkSize
	}
	if cfg.Ranges.Defaults.Workers > 0 && !cmd.Flags().Changed("workers") {
		cfg.Workers = cfg.Ranges.Defaults.Workers
	}

	// Resolve the scan bounds from positional arguments or a named range
	if err := resolveRange(cmd, cfg, args); err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.SummaryReport, err = cmd.Flags().GetBool("summary")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// resolveRange determines the scan bounds from positional arguments or a
// named range. The two sources are exclusive; mixing them would leave
// precedence unclear, so the combination is rejected.
func resolveRange(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if cfg.RangeName != "" {
		if len(args) > 0 {
			return config.ErrConflictingRangeSources
		}

		rc, ok := cfg.Ranges.GetRangeConfig(cfg.RangeName)
		if !ok {
			return fmt.Errorf("range %q: %w", cfg.RangeName, config.ErrRangeNotFound)
		}

		cfg.Low = rc.Low
		cfg.High = rc.High

		// Range-level tuning wins over file defaults but not over explicit flags
		if rc.ChunkSize > 0 && !cmd.Flags().Changed("chunk-size") {
			cfg.ChunkSize = rc.ChunkSize
		}
		if rc.Workers > 0 && !cmd.Flags().Changed("workers") {
			cfg.Workers = rc.Workers
		}

		return nil
	}

	switch len(args) {
	case 2:
		low, err := parseBound(args[0], "lower")
		if err != nil {
			return err
		}
		high, err := parseBound(args[1], "upper")
		if err != nil {
			return err
		}
		cfg.Low = low
		cfg.High = high
		return nil
	case 1:
		return fmt.Errorf("got a single bound %q: %w", args[0], config.ErrNoRange)
	default:
		return config.ErrNoRange
	}
}

// parseBound parses one positional range bound as a decimal uint64.
func parseBound(arg, name string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s bound %q: %w", name, arg, err)
	}
	return n, nil
}

// runScan executes the scan and writes the report.
//
// An interrupted or partially failed scan still yields a report with the
// chunks that completed; the report is written before the failure decides
// the exit status, so partial results are never silently dropped.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	coordinator := scan.NewCoordinator(
		scan.WithChunkSize(cfg.ChunkSize),
		scan.WithWorkers(cfg.Workers),
		scan.WithLogger(logger),
	)

	scanReport, err := coordinator.Scan(ctx, cfg.Low, cfg.High)
	if err != nil {
		if scanReport == nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		if werr := outputReport(cfg, scanReport); werr != nil {
			logger.Error("report failed", "error", werr)
		}
		return err
	}

	return outputReport(cfg, scanReport)
}

// outputReport outputs the scan report in the requested format.
func outputReport(cfg *config.Config, scanReport *model.ScanReport) error {
	// Generate summary if needed
	if scanReport.Summary == nil {
		scanReport.Summary = model.NewSummary(scanReport)
	}

	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with owner-only permissions (0600)
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report with summary and tool version)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(scanReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(scanReport)
		return err
	}

	// Human-readable summary report
	if cfg.SummaryReport {
		writer := report.NewSummaryWriter(output,
			report.WithShowEmpty(true),
			report.WithVerbose(cfg.Verbose),
		)
		_, err := writer.Write(scanReport)
		return err
	}

	// Plain result lines (default)
	writer := report.NewLinesWriter(output)
	_, err := writer.Write(scanReport)
	return err
}
