// Package corpus applies the document scanner across an ordered list of
// documents.
//
// Results are concatenated in document order, so both intra-document and
// inter-document order are preserved. Nothing is deduplicated here; that is
// the job of the order package.
package corpus
