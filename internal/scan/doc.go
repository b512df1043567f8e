// Package scan extracts tag occurrences, ranges and image captions from the
// raw text of a single document.
//
// Two regions of a document carry no references and are removed before
// scanning for plain mentions:
//   - the metadata block: a leading "---" line, YAML content, and the next "---"
//   - image captions: the text between "![" and "](" of a markdown image
//
// Every function here is pure; an absent metadata block or caption simply
// leaves the text unchanged.
package scan
