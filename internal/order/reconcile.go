package order

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/taggregate/internal/tag"
)

// Placement records a tag that was moved into a range.
type Placement struct {
	Range  tag.Range    `json:"range"`
	Member tag.Identity `json:"member"`
}

// Result is the outcome of a reconciliation.
type Result struct {
	// Tags is the reconciled order.
	Tags []tag.Identity `json:"tags"`

	// Placed lists the implied member moved into each range, in range order.
	Placed []Placement `json:"placed,omitempty"`

	// Skipped lists ranges without any implied member. It is only populated
	// when empty ranges are allowed; otherwise they are an error.
	Skipped []tag.Range `json:"skipped,omitempty"`
}

// Reconciler splices range members back into a canonical sequence.
// A member is a tag that appears between the boundaries of a range only
// because the range implies it, e.g. "{#f:fig2:f}" for "{#f:fig1:f} - {#f:fig3:f}".
//
// Design decision: Reconciler holds options only and keeps no state between
// calls. The sequence is copied on every call, so the same Reconciler can be
// shared by pipelines and tests without resetting it.
type Reconciler struct {
	// allowEmpty skips ranges with no implied member instead of failing.
	allowEmpty bool

	logger *slog.Logger
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithAllowEmptyRanges makes ranges without an implied member a warning
// instead of ErrMalformedInput.
func WithAllowEmptyRanges(allow bool) ReconcilerOption {
	return func(r *Reconciler) {
		r.allowEmpty = allow
	}
}

// WithReconcilerLogger sets the logger used for skipped ranges.
func WithReconcilerLogger(logger *slog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// NewReconciler creates a Reconciler. By default empty ranges are an error.
func NewReconciler(opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Reconcile reorders sequence according to the declared ranges.
//
// The algorithm runs in two passes over a private copy of sequence; the
// caller's slice is left untouched.
//
//  1. For each range, the first element that is neither boundary and contains
//     the start's prefix (tag.Identity.Prefix) is removed and recorded as the
//     range's member.
//  2. For each range in the same order, the recorded member is inserted right
//     before the current position of the range's end.
//
// A range whose boundaries are missing at insertion time, or that recorded no
// member, fails with tag.ErrMalformedInput. The latter is downgraded to a
// skip with WithAllowEmptyRanges.
func (r *Reconciler) Reconcile(sequence []tag.Identity, ranges []tag.Range) (*Result, error) {
	working := slices.Clone(sequence)
	members := make([]tag.Identity, len(ranges))

	for i, rng := range ranges {
		idx := memberIndex(working, rng)
		if idx < 0 {
			continue
		}
		members[i] = working[idx]
		working = slices.Delete(working, idx, idx+1)
	}

	result := &Result{}
	for i, rng := range ranges {
		if !slices.Contains(working, rng.Start) {
			return nil, fmt.Errorf("%w: range %s: start %s is not in the tag order", tag.ErrMalformedInput, rng, rng.Start)
		}
		end := slices.Index(working, rng.End)
		if end < 0 {
			return nil, fmt.Errorf("%w: range %s: end %s is not in the tag order", tag.ErrMalformedInput, rng, rng.End)
		}

		member := members[i]
		if member == "" {
			if !r.allowEmpty {
				return nil, fmt.Errorf("%w: range %s implies no tag", tag.ErrMalformedInput, rng)
			}
			r.logger.Warn("range implies no tag, skipping", "range", rng.String())
			result.Skipped = append(result.Skipped, rng)
			continue
		}

		working = slices.Insert(working, end, member)
		result.Placed = append(result.Placed, Placement{Range: rng, Member: member})
		r.logger.Debug("placed range member", "range", rng.String(), "member", member.String())
	}

	result.Tags = working
	return result, nil
}

// Reconcile runs a default Reconciler and returns only the reconciled order.
func Reconcile(sequence []tag.Identity, ranges []tag.Range) ([]tag.Identity, error) {
	res, err := NewReconciler().Reconcile(sequence, ranges)
	if err != nil {
		return nil, err
	}
	return res.Tags, nil
}

// memberIndex returns the position of the first element of working that the
// prefix heuristic assigns to rng, or -1.
func memberIndex(working []tag.Identity, rng tag.Range) int {
	prefix := rng.Start.Prefix()
	for i, t := range working {
		if t == rng.Start || t == rng.End {
			continue
		}
		if strings.Contains(string(t), prefix) {
			return i
		}
	}
	return -1
}
