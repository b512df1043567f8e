// Package model defines the data structures shared across Taggregate.
//
// This package contains the following main types:
//   - Aggregation: the state and result of one aggregation run
//   - DocumentSummary: per-document counts collected while scanning
//   - Kind: the reference category of a tag, with a human-readable label
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The pipeline and report packages both need these types.
//
// The models are serializable to JSON for report output.
package model
