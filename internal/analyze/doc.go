// Package analyze detects consistency problems across the extracted facts
// of a bilingual site snapshot.
//
// Analysis is organized as phase analyzers run by a coordinator in a fixed
// order: pricing, package details, translation parity, contact information,
// then terminology. Each phase inspects the shared corpus independently and
// emits typed discrepancies; the coordinator aggregates them into the order
// the phases ran, so report output is deterministic for a given snapshot.
package analyze
