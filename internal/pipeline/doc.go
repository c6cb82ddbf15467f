// Package pipeline orchestrates one audit run as a sequence of steps:
// load the snapshot, extract facts from every page, analyze the corpus
// into a report. The BatchProcessor runs the same pipeline over multiple
// snapshot files concurrently.
package pipeline
