// Package main provides the entry point for the siteaudit CLI.
//
// Siteaudit analyzes crawled snapshots of a bilingual website and reports
// internal inconsistencies: conflicting prices, mismatched package
// attributes, untranslated or diverging language editions, too many
// advertised contact points, and inconsistent terminology.
//
// Usage:
//
//	siteaudit audit <snapshot.json>
//	siteaudit audit site-en.json site-si.json
//
// See --help for all available options.
package main

// main is the entry point for siteaudit.
func main() {
	Execute()
}
