package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. Package-level
// sentinel errors let callers use errors.Is() while keeping the messages
// human-readable.
var (
	// ErrNoSnapshot is returned when no snapshot file is specified.
	ErrNoSnapshot = errors.New("no snapshot specified: provide at least one snapshot file")

	// ErrInvalidClusterTolerance is returned when the price clustering
	// tolerance is outside (0, 1).
	ErrInvalidClusterTolerance = errors.New("invalid cluster tolerance: must be between 0 and 1")

	// ErrInvalidSpreadThreshold is returned when the pricing spread
	// threshold is not positive.
	ErrInvalidSpreadThreshold = errors.New("invalid spread threshold: must be positive")

	// ErrInvalidPriceListTolerance is returned when the price-list match
	// tolerance is outside (0, 1).
	ErrInvalidPriceListTolerance = errors.New("invalid price list tolerance: must be between 0 and 1")

	// ErrInvalidContextWidth is returned when the context window width is
	// not positive.
	ErrInvalidContextWidth = errors.New("invalid context width: must be positive")

	// ErrInvalidContactThreshold is returned when the contact alarm
	// threshold is below one.
	ErrInvalidContactThreshold = errors.New("invalid contact alarm threshold: must be at least 1")

	// ErrInvalidLanguageRatio is returned when a language classification
	// ratio is outside (0, 1).
	ErrInvalidLanguageRatio = errors.New("invalid language ratio: must be between 0 and 1")

	// ErrInvalidOverlapThreshold is returned when the feature-overlap
	// pairing threshold is outside (0, 1).
	ErrInvalidOverlapThreshold = errors.New("invalid feature overlap threshold: must be between 0 and 1")

	// ErrInvalidBannerThreshold is returned when the banner similarity
	// threshold is outside (0, 1].
	ErrInvalidBannerThreshold = errors.New("invalid banner similarity threshold: must be between 0 and 1")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
