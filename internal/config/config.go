package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The threshold defaults mirror the tuning the audit was calibrated with
// against the production site; changing them changes which borderline
// variations are reported, so overrides belong in the config file where
// they are visible, not in code.
const (
	// DefaultClusterTolerance is the relative distance within which two
	// prices are treated as restatements of the same price. 10% absorbs
	// rounding and promotional-cents noise without merging real tiers.
	DefaultClusterTolerance = 0.10

	// DefaultSpreadThreshold is the relative spread between the cheapest
	// and most expensive price clusters above which a category is
	// reported. 20% is far enough above the cluster tolerance that a
	// report always means at least two genuinely different price points.
	DefaultSpreadThreshold = 0.20

	// DefaultPriceListTolerance is the per-price tolerance when comparing
	// the price lists of two language editions. Stricter than clustering
	// because translated pages should quote the same numbers.
	DefaultPriceListTolerance = 0.05

	// DefaultContextWidth is the number of characters captured on each
	// side of a matched fact for review context.
	DefaultContextWidth = 50

	// DefaultContactAlarmThreshold is the number of distinct phone numbers
	// or email addresses site-wide above which an alarm is raised.
	DefaultContactAlarmThreshold = 3

	// DefaultDominantRatio is the script ratio above which a short text
	// snippet is classified as single-language.
	DefaultDominantRatio = 0.7

	// DefaultPresenceRatio is the script ratio above which a script counts
	// as present when deciding whether a snippet is mixed.
	DefaultPresenceRatio = 0.1

	// DefaultPageEnglishRatio is the English ratio above which a whole
	// page is classified as English.
	DefaultPageEnglishRatio = 0.5

	// DefaultFeatureOverlapThreshold is the Jaccard ratio above which two
	// pages pair by feature overlap.
	DefaultFeatureOverlapThreshold = 0.5

	// DefaultBannerSimilarityThreshold is the similarity ratio below which
	// two superlative banner claims are reported as contradictory.
	DefaultBannerSimilarityThreshold = 0.8

	// DefaultBatchSize is the number of snapshots audited concurrently
	// when processing multiple snapshot files.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "siteaudit"
)

// Config holds all configuration options for a site audit.
// It is populated from CLI flags plus the optional config file and passed
// through the application explicitly rather than via global state.
type Config struct {
	// Snapshots are the snapshot file paths to audit. Each file holds one
	// crawled site keyed by URL.
	Snapshots []string

	// ClusterTolerance is the relative price-clustering tolerance.
	ClusterTolerance float64

	// SpreadThreshold is the relative cluster spread that triggers a
	// pricing discrepancy.
	SpreadThreshold float64

	// PriceListTolerance is the per-price tolerance for cross-language
	// price-list comparison.
	PriceListTolerance float64

	// ContextWidth is the context window half-width in characters.
	ContextWidth int

	// ContactAlarmThreshold is the distinct-contact count above which an
	// alarm is raised.
	ContactAlarmThreshold int

	// DominantRatio, PresenceRatio, and PageEnglishRatio are the language
	// classification thresholds. They are part of the classification
	// contract and rarely need changing.
	DominantRatio    float64
	PresenceRatio    float64
	PageEnglishRatio float64

	// FeatureOverlapThreshold is the Jaccard page-pairing threshold.
	FeatureOverlapThreshold float64

	// BannerSimilarityThreshold is the banner-contradiction threshold.
	BannerSimilarityThreshold float64

	// BatchSize is the number of snapshots audited concurrently.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .siteaudit in the current directory and then in
	// the user's home directory.
	ConfigFilePath string

	// DBDir is the directory for the audit history database. When set,
	// each report is saved for later comparison with `siteaudit compare`.
	DBDir string

	// SaveToDB indicates whether to save reports to the database. Set
	// automatically when DBDir is configured.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		ClusterTolerance:          DefaultClusterTolerance,
		SpreadThreshold:           DefaultSpreadThreshold,
		PriceListTolerance:        DefaultPriceListTolerance,
		ContextWidth:              DefaultContextWidth,
		ContactAlarmThreshold:     DefaultContactAlarmThreshold,
		DominantRatio:             DefaultDominantRatio,
		PresenceRatio:             DefaultPresenceRatio,
		PageEnglishRatio:          DefaultPageEnglishRatio,
		FeatureOverlapThreshold:   DefaultFeatureOverlapThreshold,
		BannerSimilarityThreshold: DefaultBannerSimilarityThreshold,
		BatchSize:                 DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for the audit database.
// On Linux: ~/.local/share/siteaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory.
// On Linux: ~/.config/siteaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid. Invalid thresholds are a
// contract violation and must surface here, before any analysis starts,
// rather than mid-run.
//
// The first error found is returned; fixing one error often makes the
// others irrelevant.
func (c *Config) Validate() error {
	if len(c.Snapshots) == 0 {
		return ErrNoSnapshot
	}
	if c.ClusterTolerance <= 0 || c.ClusterTolerance >= 1 {
		return ErrInvalidClusterTolerance
	}
	if c.SpreadThreshold <= 0 {
		return ErrInvalidSpreadThreshold
	}
	if c.PriceListTolerance <= 0 || c.PriceListTolerance >= 1 {
		return ErrInvalidPriceListTolerance
	}
	if c.ContextWidth <= 0 {
		return ErrInvalidContextWidth
	}
	if c.ContactAlarmThreshold < 1 {
		return ErrInvalidContactThreshold
	}
	if !validRatio(c.DominantRatio) || !validRatio(c.PresenceRatio) || !validRatio(c.PageEnglishRatio) {
		return ErrInvalidLanguageRatio
	}
	if !validRatio(c.FeatureOverlapThreshold) {
		return ErrInvalidOverlapThreshold
	}
	if c.BannerSimilarityThreshold <= 0 || c.BannerSimilarityThreshold > 1 {
		return ErrInvalidBannerThreshold
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

func validRatio(r float64) bool {
	return r > 0 && r < 1
}
