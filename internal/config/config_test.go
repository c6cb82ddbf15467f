package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	c := NewConfig()
	c.Snapshots = []string{"snapshot.json"}
	return c
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	c := NewConfig()

	if c.ClusterTolerance != DefaultClusterTolerance {
		t.Errorf("ClusterTolerance = %v, want %v", c.ClusterTolerance, DefaultClusterTolerance)
	}
	if c.SpreadThreshold != DefaultSpreadThreshold {
		t.Errorf("SpreadThreshold = %v, want %v", c.SpreadThreshold, DefaultSpreadThreshold)
	}
	if c.ContextWidth != DefaultContextWidth {
		t.Errorf("ContextWidth = %v, want %v", c.ContextWidth, DefaultContextWidth)
	}
	if c.ContactAlarmThreshold != DefaultContactAlarmThreshold {
		t.Errorf("ContactAlarmThreshold = %v, want %v", c.ContactAlarmThreshold, DefaultContactAlarmThreshold)
	}
	if c.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %v, want %v", c.BatchSize, DefaultBatchSize)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "no snapshot",
			mutate:  func(c *Config) { c.Snapshots = nil },
			wantErr: ErrNoSnapshot,
		},
		{
			name:    "zero cluster tolerance",
			mutate:  func(c *Config) { c.ClusterTolerance = 0 },
			wantErr: ErrInvalidClusterTolerance,
		},
		{
			name:    "cluster tolerance of one",
			mutate:  func(c *Config) { c.ClusterTolerance = 1 },
			wantErr: ErrInvalidClusterTolerance,
		},
		{
			name:    "negative spread threshold",
			mutate:  func(c *Config) { c.SpreadThreshold = -0.1 },
			wantErr: ErrInvalidSpreadThreshold,
		},
		{
			name:    "zero context width",
			mutate:  func(c *Config) { c.ContextWidth = 0 },
			wantErr: ErrInvalidContextWidth,
		},
		{
			name:    "zero contact threshold",
			mutate:  func(c *Config) { c.ContactAlarmThreshold = 0 },
			wantErr: ErrInvalidContactThreshold,
		},
		{
			name:    "dominant ratio above one",
			mutate:  func(c *Config) { c.DominantRatio = 1.5 },
			wantErr: ErrInvalidLanguageRatio,
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "conflicting report formats",
			mutate:  func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			wantErr: ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("overrides applied", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := []byte(`thresholds:
  cluster_tolerance: 0.15
  contact_alarm_threshold: 5
`)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}

		c := validConfig()
		cf.Apply(c)

		if c.ClusterTolerance != 0.15 {
			t.Errorf("ClusterTolerance = %v, want 0.15", c.ClusterTolerance)
		}
		if c.ContactAlarmThreshold != 5 {
			t.Errorf("ContactAlarmThreshold = %v, want 5", c.ContactAlarmThreshold)
		}
		// Untouched fields keep their defaults.
		if c.SpreadThreshold != DefaultSpreadThreshold {
			t.Errorf("SpreadThreshold = %v, want default", c.SpreadThreshold)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfigFile() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("thresholds: ["), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("LoadConfigFile() error = nil, want parse error")
		}
	})
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("thresholds: {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := FindConfigFile(path); got != path {
		t.Errorf("FindConfigFile() = %q, want %q", got, path)
	}
	if got := FindConfigFile(filepath.Join(t.TempDir(), "absent")); got != "" {
		t.Errorf("FindConfigFile() = %q, want empty for absent explicit path", got)
	}
}
