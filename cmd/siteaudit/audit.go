package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/analyze"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/config"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/database"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/lang"
	intlog "github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/log"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/pipeline"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/report"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [snapshot.json...]",
		Short: "Audit site snapshots for internal inconsistencies",
		Long: `Audit analyzes one or more crawled site snapshots for inconsistencies.

Each snapshot is a JSON file keyed by page URL, as produced by the
crawler. The audit extracts prices, package attributes, contact details,
and terminology from every page, then cross-checks them within and across
language editions.

Examples:
  # Audit a single snapshot
  siteaudit audit snapshot.json

  # Audit several snapshots concurrently
  siteaudit audit site1.json site2.json site3.json

  # Output JSON report
  siteaudit audit --json snapshot.json

  # Write a Markdown report to a file
  siteaudit audit --markdown -o report.md snapshot.json

  # Use a custom configuration file
  siteaudit audit -c thresholds.yaml snapshot.json

Configuration file (.siteaudit) example:
  thresholds:
    cluster_tolerance: 0.10
    spread_threshold: 0.20
    price_list_tolerance: 0.05
    contact_alarm_threshold: 3`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	// Threshold flags
	cmd.Flags().Float64P("cluster-tolerance", "C", config.DefaultClusterTolerance,
		"Relative tolerance within which prices are treated as the same price point")
	cmd.Flags().Float64P("spread-threshold", "S", config.DefaultSpreadThreshold,
		"Relative cluster spread above which a pricing discrepancy is reported")
	cmd.Flags().Float64P("price-tolerance", "P", config.DefaultPriceListTolerance,
		"Per-price tolerance when comparing language edition price lists")
	cmd.Flags().IntP("context-width", "w", config.DefaultContextWidth,
		"Characters of context captured on each side of a matched fact")
	cmd.Flags().IntP("contact-threshold", "n", config.DefaultContactAlarmThreshold,
		"Distinct contact identifiers above which an alarm is raised")

	// Batch auditing flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent snapshot audits")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .siteaudit in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-save", false,
		"Do not save the report to the audit history database")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := intlog.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cfg, logger)
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

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ClusterTolerance, err = cmd.Flags().GetFloat64("cluster-tolerance")
	if err != nil {
		return nil, err
	}

	cfg.SpreadThreshold, err = cmd.Flags().GetFloat64("spread-threshold")
	if err != nil {
		return nil, err
	}

	cfg.PriceListTolerance, err = cmd.Flags().GetFloat64("price-tolerance")
	if err != nil {
		return nil, err
	}

	cfg.ContextWidth, err = cmd.Flags().GetInt("context-width")
	if err != nil {
		return nil, err
	}

	cfg.ContactAlarmThreshold, err = cmd.Flags().GetInt("contact-threshold")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load threshold overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue on defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		overrides, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		overrides.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags changed by the user win over config file values, so reapply
	// them after the file.
	if cmd.Flags().Changed("cluster-tolerance") {
		cfg.ClusterTolerance, _ = cmd.Flags().GetFloat64("cluster-tolerance")
	}
	if cmd.Flags().Changed("spread-threshold") {
		cfg.SpreadThreshold, _ = cmd.Flags().GetFloat64("spread-threshold")
	}
	if cmd.Flags().Changed("price-tolerance") {
		cfg.PriceListTolerance, _ = cmd.Flags().GetFloat64("price-tolerance")
	}
	if cmd.Flags().Changed("context-width") {
		cfg.ContextWidth, _ = cmd.Flags().GetInt("context-width")
	}
	if cmd.Flags().Changed("contact-threshold") {
		cfg.ContactAlarmThreshold, _ = cmd.Flags().GetInt("contact-threshold")
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	if cfg.SaveToDB {
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the snapshot files
	cfg.Snapshots = args

	return cfg, nil
}

// runAudit executes the audit over every snapshot.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting audit",
		"snapshots", cfg.Snapshots,
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	var db *database.AuditDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close() //nolint:errcheck // Best effort cleanup
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	factory := newPipelineFactory(cfg, logger)

	if len(cfg.Snapshots) > 1 && cfg.BatchSize > 1 {
		return runBatchAudit(ctx, cfg, factory, db, logger)
	}
	return runSequentialAudit(ctx, cfg, factory, db, logger)
}

// runSequentialAudit audits snapshots one at a time.
func runSequentialAudit(ctx context.Context, cfg *config.Config, factory pipeline.PipelineFactory, db *database.AuditDB, logger *slog.Logger) error {
	for _, source := range cfg.Snapshots {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Printf("Auditing %s...\n", source)
		startTime := time.Now()

		audit := &pipeline.Audit{Source: source}
		if err := factory().Execute(ctx, audit); err != nil {
			logger.Error("audit failed", "source", source, "error", err)
			fmt.Fprintf(os.Stderr, "Audit error for %s: %v\n", source, err)
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Audit completed in %s\n\n", elapsed.Round(time.Millisecond))

		if err := outputReport(cfg, audit.Report); err != nil {
			logger.Error("report failed", "source", source, "error", err)
		}

		if err := saveAuditReport(ctx, db, audit.Report, logger); err != nil {
			logger.Error("failed to save audit report", "source", source, "error", err)
		}
	}
	return nil
}

// runBatchAudit audits multiple snapshots concurrently.
func runBatchAudit(ctx context.Context, cfg *config.Config, factory pipeline.PipelineFactory, db *database.AuditDB, logger *slog.Logger) error {
	fmt.Printf("Starting batch audit of %d snapshots (concurrency: %d)...\n\n",
		len(cfg.Snapshots), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(factory,
		pipeline.WithBatchConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.Run(ctx, cfg.Snapshots)
	if err != nil {
		return err
	}

	for i, r := range reports {
		fmt.Printf("[%d/%d] Audit completed: %s\n", i+1, len(reports), r.Source)

		if err := outputReport(cfg, r); err != nil {
			logger.Error("report failed", "source", r.Source, "error", err)
		}
		if err := saveAuditReport(ctx, db, r, logger); err != nil {
			logger.Error("failed to save audit report", "source", r.Source, "error", err)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch audit completed in %s\n", elapsed.Round(time.Millisecond))
	return nil
}

// newPipelineFactory builds the load/extract/analyze pipeline for one
// snapshot from the resolved configuration.
func newPipelineFactory(cfg *config.Config, logger *slog.Logger) pipeline.PipelineFactory {
	classifier := lang.NewClassifierWithThresholds(
		cfg.DominantRatio, cfg.PresenceRatio, cfg.PageEnglishRatio)

	options := analyze.Options{
		ClusterTolerance:          cfg.ClusterTolerance,
		SpreadThreshold:           cfg.SpreadThreshold,
		PriceListTolerance:        cfg.PriceListTolerance,
		ContactAlarmThreshold:     cfg.ContactAlarmThreshold,
		FeatureOverlapThreshold:   cfg.FeatureOverlapThreshold,
		BannerSimilarityThreshold: cfg.BannerSimilarityThreshold,
	}

	return func() *pipeline.Pipeline {
		p := pipeline.New(pipeline.WithLogger(logger))
		p.AddSteps(
			pipeline.NewLoadStep(),
			pipeline.NewExtractStep(
				pipeline.WithClassifier(classifier),
				pipeline.WithContextWidth(cfg.ContextWidth),
			),
			pipeline.NewAnalyzeStep(
				pipeline.WithAnalyzeOptions(options),
				pipeline.WithAnalyzeLogger(logger),
			),
		)
		return p
	}
}

// outputReport writes the report in the requested format.
func outputReport(cfg *config.Config, auditReport *model.Report) error {
	if auditReport == nil {
		return errors.New("no report produced")
	}

	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Flushed by Write below
		output = f
	} else {
		output = os.Stdout
	}

	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(auditReport)
		return err
	}

	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(auditReport)
		return err
	}

	writer := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(auditReport)
	return err
}

// saveAuditReport saves the report to the database if enabled.
// If db is nil, this function is a no-op.
func saveAuditReport(ctx context.Context, db *database.AuditDB, auditReport *model.Report, logger *slog.Logger) error {
	if db == nil || auditReport == nil {
		return nil
	}

	id, err := db.SaveReport(ctx, auditReport)
	if err != nil {
		return fmt.Errorf("failed to save audit report: %w", err)
	}

	logger.Info("audit report saved to database", "source", auditReport.Source, "id", id)
	return nil
}
