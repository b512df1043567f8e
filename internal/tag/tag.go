package tag

import (
	"errors"
	"fmt"
	"regexp"
)

// FigureType is the type flag of an occurrence that defines a figure.
const FigureType = "f"

// TypeClass is the character class of the one-character type field. Unlike
// Go's ASCII-only \w it admits any Unicode letter or digit, so "{#f:a:é}" is
// a token.
const TypeClass = `[\p{L}\p{N}_]`

// tokenPattern matches a single token anywhere in text.
const tokenPattern = `\{#[a-z]:[a-z0-9_-]*:` + TypeClass + `\}`

var (
	// TokenRegexp finds tokens in free text.
	TokenRegexp = regexp.MustCompile(tokenPattern)

	// RangeRegexp finds two tokens joined by a dash. A single optional space
	// may surround the dash and one optional uppercase letter may precede the
	// second token (e.g. "{#f:a:f} - S{#f:c:f}").
	RangeRegexp = regexp.MustCompile(tokenPattern + `[ ]?-[ ]?[A-Z]?` + tokenPattern)

	identityRegexp = regexp.MustCompile(`#[a-z]:[a-z0-9_-]*`)
	typeRegexp     = regexp.MustCompile(`:(` + TypeClass + `)\}`)
	exactRegexp    = regexp.MustCompile(`^\{#([a-z]):([a-z0-9_-]*):(` + TypeClass + `)\}$`)
)

var (
	// ErrMalformedInput reports input the aggregation cannot make sense of:
	// tokens outside the grammar, ranges whose boundaries are missing from the
	// resolved order, or documents without the metadata block they need.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidToken is returned by Parse for strings outside the grammar.
	ErrInvalidToken = fmt.Errorf("%w: invalid tag token", ErrMalformedInput)
)

// Token is one raw occurrence, e.g. "{#f:one:f}".
type Token string

// Parse checks s against the full token grammar.
func Parse(s string) (Token, error) {
	if !exactRegexp.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
	return Token(s), nil
}

// Identity returns the #<kind>:<name> part of the token.
// The token must match the grammar; otherwise the result is empty.
func (t Token) Identity() Identity {
	return Name(string(t))
}

// Type returns the trailing type character, or "" for malformed tokens.
func (t Token) Type() string {
	m := typeRegexp.FindStringSubmatch(string(t))
	if m == nil {
		return ""
	}
	return m[1]
}

// IsFigure reports whether this occurrence defines its item as a figure.
func (t Token) IsFigure() bool {
	return t.Type() == FigureType
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}

// Name extracts the identity substring of a matched token.
func Name(token string) Identity {
	return Identity(identityRegexp.FindString(token))
}

// Identity is the deduplication key of a tag: "#<kind>:<name>".
type Identity string

// Kind returns the single-letter reference category.
func (id Identity) Kind() string {
	if len(id) < 2 {
		return ""
	}
	return string(id[1])
}

// Label returns the name field without the kind prefix.
func (id Identity) Label() string {
	if len(id) < 3 {
		return ""
	}
	return string(id[3:])
}

// Prefix returns the identity without its last two characters. The range
// reconciler treats any identity containing this string as a candidate member
// of a range that starts at id.
func (id Identity) Prefix() string {
	if len(id) < 2 {
		return ""
	}
	return string(id[:len(id)-2])
}

// Token renders the identity back into token form with the given type flag,
// e.g. Identity("#f:one").Token("m") == "{#f:one:m}".
func (id Identity) Token(typ string) string {
	return "{" + string(id) + ":" + typ + "}"
}

// String implements fmt.Stringer.
func (id Identity) String() string {
	return string(id)
}

// Range is an inclusive span of tags declared in text by its two boundaries.
type Range struct {
	Start Identity `json:"start"`
	End   Identity `json:"end"`
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return string(r.Start) + " - " + string(r.End)
}

// ParseRange decomposes a RangeRegexp match into its boundary identities.
func ParseRange(match string) (Range, error) {
	tokens := TokenRegexp.FindAllString(match, -1)
	if len(tokens) != 2 {
		return Range{}, fmt.Errorf("%w: range %q must contain exactly two tokens", ErrMalformedInput, match)
	}
	return Range{Start: Name(tokens[0]), End: Name(tokens[1])}, nil
}
