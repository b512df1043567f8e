// Package tag defines the cross-reference token grammar used by Taggregate.
//
// A token has the fixed shape {#<kind>:<name>:<type>}:
//   - kind is a single lowercase letter naming the reference category
//     (f for figures, t for tables, e for equations, ...)
//   - name is a lowercase identifier made of letters, digits, '_' and '-'
//   - type is a single word character; "f" marks the occurrence that defines
//     the item as a figure, anything else is a plain reference
//
// The identity of a tag is #<kind>:<name>. The type is occurrence metadata and
// never takes part in deduplication.
//
// Two tokens separated by a dash form a range ("{#f:two:f} - {#f:four:f}").
// Only the boundaries of a range are recorded; interior members are inferred
// later by the order package.
package tag
