package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".siteaudit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML override file. Every field is optional; absent fields
// keep their defaults, which is why the threshold fields are pointers
// rather than zero-valued floats.
type File struct {
	Thresholds Thresholds `yaml:"thresholds"`
}

// Thresholds holds the tunable analysis thresholds.
type Thresholds struct {
	ClusterTolerance          *float64 `yaml:"cluster_tolerance"`
	SpreadThreshold           *float64 `yaml:"spread_threshold"`
	PriceListTolerance        *float64 `yaml:"price_list_tolerance"`
	ContextWidth              *int     `yaml:"context_width"`
	ContactAlarmThreshold     *int     `yaml:"contact_alarm_threshold"`
	DominantRatio             *float64 `yaml:"dominant_ratio"`
	PresenceRatio             *float64 `yaml:"presence_ratio"`
	PageEnglishRatio          *float64 `yaml:"page_english_ratio"`
	FeatureOverlapThreshold   *float64 `yaml:"feature_overlap_threshold"`
	BannerSimilarityThreshold *float64 `yaml:"banner_similarity_threshold"`
}

// LoadConfigFile loads threshold overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this based on whether the path was explicitly specified by the
// user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies the file's set overrides onto c. Validation happens after
// application, so a bad override fails the same way a bad flag does.
func (f *File) Apply(c *Config) {
	t := f.Thresholds
	if t.ClusterTolerance != nil {
		c.ClusterTolerance = *t.ClusterTolerance
	}
	if t.SpreadThreshold != nil {
		c.SpreadThreshold = *t.SpreadThreshold
	}
	if t.PriceListTolerance != nil {
		c.PriceListTolerance = *t.PriceListTolerance
	}
	if t.ContextWidth != nil {
		c.ContextWidth = *t.ContextWidth
	}
	if t.ContactAlarmThreshold != nil {
		c.ContactAlarmThreshold = *t.ContactAlarmThreshold
	}
	if t.DominantRatio != nil {
		c.DominantRatio = *t.DominantRatio
	}
	if t.PresenceRatio != nil {
		c.PresenceRatio = *t.PresenceRatio
	}
	if t.PageEnglishRatio != nil {
		c.PageEnglishRatio = *t.PageEnglishRatio
	}
	if t.FeatureOverlapThreshold != nil {
		c.FeatureOverlapThreshold = *t.FeatureOverlapThreshold
	}
	if t.BannerSimilarityThreshold != nil {
		c.BannerSimilarityThreshold = *t.BannerSimilarityThreshold
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .siteaudit in the current directory
// 3. Look for .siteaudit in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
