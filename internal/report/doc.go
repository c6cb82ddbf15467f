// Package report renders analysis reports in multiple output formats.
// It provides a text writer for terminal display, a JSON writer for tool
// integration, and a Markdown writer for documentation and sharing.
package report
