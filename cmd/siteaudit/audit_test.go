package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/config"
)

func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	if cmd.Use != "audit [snapshot.json...]" {
		t.Errorf("unexpected Use: got %q", cmd.Use)
	}

	// Verify flags exist with their short options
	flagsWithShort := map[string]string{
		"cluster-tolerance": "C",
		"spread-threshold":  "S",
		"price-tolerance":   "P",
		"context-width":     "w",
		"contact-threshold": "n",
		"batch":             "b",
		"config":            "c",
		"json":              "j",
		"markdown":          "m",
		"output":            "o",
	}
	for flag, shorthand := range flagsWithShort {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("expected flag %q to exist", flag)
			continue
		}
		if f.Shorthand != shorthand {
			t.Errorf("flag %q: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
		}
	}

	if cmd.Flags().Lookup("no-save") == nil {
		t.Error("expected no-save flag to exist")
	}
}

func TestBuildConfigDefaults(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	cfg, err := buildConfig(cmd, []string{"snapshot.json"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v, want nil", err)
	}

	if cfg.ClusterTolerance != config.DefaultClusterTolerance {
		t.Errorf("ClusterTolerance = %v, want %v", cfg.ClusterTolerance, config.DefaultClusterTolerance)
	}
	if cfg.SpreadThreshold != config.DefaultSpreadThreshold {
		t.Errorf("SpreadThreshold = %v, want %v", cfg.SpreadThreshold, config.DefaultSpreadThreshold)
	}
	if cfg.BatchSize != config.DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, config.DefaultBatchSize)
	}
	if len(cfg.Snapshots) != 1 || cfg.Snapshots[0] != "snapshot.json" {
		t.Errorf("Snapshots = %v, want [snapshot.json]", cfg.Snapshots)
	}
	if !cfg.SaveToDB {
		t.Error("SaveToDB = false, want true by default")
	}
	if cfg.DBDir == "" {
		t.Error("DBDir is empty, want XDG data directory")
	}
}

func TestBuildConfigFlagOverrides(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	if err := cmd.Flags().Set("cluster-tolerance", "0.15"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("contact-threshold", "5"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("no-save", "true"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd, []string{"snapshot.json"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v, want nil", err)
	}

	if cfg.ClusterTolerance != 0.15 {
		t.Errorf("ClusterTolerance = %v, want 0.15", cfg.ClusterTolerance)
	}
	if cfg.ContactAlarmThreshold != 5 {
		t.Errorf("ContactAlarmThreshold = %d, want 5", cfg.ContactAlarmThreshold)
	}
	if cfg.SaveToDB {
		t.Error("SaveToDB = true, want false with --no-save")
	}
}

func TestBuildConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	doc := "thresholds:\n  spread_threshold: 0.30\n  contact_alarm_threshold: 6\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := NewAuditCmd()
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	// An explicitly changed flag wins over the file.
	if err := cmd.Flags().Set("contact-threshold", "2"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd, []string{"snapshot.json"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v, want nil", err)
	}

	if cfg.SpreadThreshold != 0.30 {
		t.Errorf("SpreadThreshold = %v, want 0.30 from config file", cfg.SpreadThreshold)
	}
	if cfg.ContactAlarmThreshold != 2 {
		t.Errorf("ContactAlarmThreshold = %d, want 2 from flag override", cfg.ContactAlarmThreshold)
	}
}

func TestBuildConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	if err := cmd.Flags().Set("config", missing); err != nil {
		t.Fatal(err)
	}

	if _, err := buildConfig(cmd, []string{"snapshot.json"}); err == nil {
		t.Fatal("buildConfig() error = nil, want error for missing explicit config file")
	}
}

func TestBuildConfigValidation(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		t.Fatalf("buildConfig() error = %v, want nil", err)
	}

	if err := cfg.Validate(); !errors.Is(err, config.ErrNoSnapshot) {
		t.Fatalf("Validate() error = %v, want %v", err, config.ErrNoSnapshot)
	}
}
