// Package model defines the core data structures used throughout the
// consistency auditor.
//
// This package contains the following main types:
//   - PageRecord: an immutable snapshot of a single crawled page
//   - PageFacts: the facts extracted from one page
//   - Discrepancy: a single detected inconsistency
//   - Report: the aggregated result of one analysis run
//
// The model package has no dependencies on other internal packages,
// making it safe to import from anywhere in the codebase.
package model
