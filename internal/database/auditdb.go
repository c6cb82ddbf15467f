package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// ErrReportNotFound is returned when no stored report matches the query.
var ErrReportNotFound = errors.New("report not found")

// AuditDB provides SQLite-based storage for audit reports.
//
// Design decision: We store the full report as a JSON blob alongside
// queryable summary columns rather than normalizing discrepancies into
// their own table. Reports are read back whole for comparison, never
// queried per-discrepancy, so a blob keeps the schema stable as
// discrepancy payloads evolve.
type AuditDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ReportMetadata summarizes one stored report without its payload.
type ReportMetadata struct {
	ID          int64
	Source      string
	GeneratedAt time.Time
	Total       int
	HighCount   int
	MediumCount int
}

// Open opens or creates an AuditDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created as needed.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, "siteaudit.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS audits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		generated_at DATETIME NOT NULL,
		pages_analyzed INTEGER NOT NULL,
		total INTEGER NOT NULL,
		high_count INTEGER NOT NULL,
		medium_count INTEGER NOT NULL,
		low_count INTEGER NOT NULL,
		info_count INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audits_source ON audits(source);
	CREATE INDEX IF NOT EXISTS idx_audits_generated_at ON audits(generated_at);
	`

	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport stores the report and returns its row ID.
func (adb *AuditDB) SaveReport(ctx context.Context, report *model.Report) (int64, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("marshal report: %w", err)
	}

	result, err := adb.db.ExecContext(ctx, `
		INSERT INTO audits (
			source, generated_at, pages_analyzed, total,
			high_count, medium_count, low_count, info_count, report_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.Source, report.GeneratedAt, report.PagesAnalyzed,
		report.TotalDiscrepancies(),
		report.HighCount, report.MediumCount, report.LowCount, report.InfoCount,
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	return result.LastInsertId()
}

// GetReportByID loads one stored report.
func (adb *AuditDB) GetReportByID(ctx context.Context, id int64) (*model.Report, error) {
	var payload string
	err := adb.db.QueryRowContext(ctx,
		`SELECT report_json FROM audits WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &report, nil
}

// GetLatestReports returns the most recent stored reports for source,
// newest first, at most limit rows.
func (adb *AuditDB) GetLatestReports(ctx context.Context, source string, limit int) ([]*model.Report, error) {
	rows, err := adb.db.QueryContext(ctx, `
		SELECT report_json FROM audits
		WHERE source = ?
		ORDER BY generated_at DESC, id DESC
		LIMIT ?`, source, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var reports []*model.Report
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		var report model.Report
		if err := json.Unmarshal([]byte(payload), &report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}

// History returns metadata for every stored report of source, newest
// first.
func (adb *AuditDB) History(ctx context.Context, source string) ([]ReportMetadata, error) {
	rows, err := adb.db.QueryContext(ctx, `
		SELECT id, source, generated_at, total, high_count, medium_count
		FROM audits
		WHERE source = ?
		ORDER BY generated_at DESC, id DESC`, source)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var history []ReportMetadata
	for rows.Next() {
		var m ReportMetadata
		if err := rows.Scan(&m.ID, &m.Source, &m.GeneratedAt, &m.Total, &m.HighCount, &m.MediumCount); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		history = append(history, m)
	}
	return history, rows.Err()
}

// ListSources returns every distinct audited source in alphabetical order.
func (adb *AuditDB) ListSources(ctx context.Context) ([]string, error) {
	rows, err := adb.db.QueryContext(ctx,
		`SELECT DISTINCT source FROM audits ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("query sources: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}
