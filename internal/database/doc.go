// Package database provides SQLite-based storage for audit reports.
// Saved reports enable historical comparison: rerunning the audit after a
// content fix and diffing against the previous run shows whether the
// discrepancies actually went away.
package database
