// Package pipeline runs an aggregation as a sequence of steps.
//
// A run loads the configured documents, scans them for occurrences and
// ranges, resolves the canonical order, reconciles ranges, writes the tag
// file and optionally injects the list into each document's metadata block.
// Each stage is a Step that receives the shared model.Aggregation and fills
// in its part; commands compose different subsets of the same steps.
//
// Execution is strictly sequential. Cancellation is checked between steps
// and the first failing step aborts the run.
package pipeline
