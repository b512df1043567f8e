package scan

import (
	"regexp"

	"github.com/nao1215/taggregate/internal/tag"
)

var (
	// headerRegexp matches the metadata block at the very start of the text.
	// The closing delimiter is matched non-greedily.
	headerRegexp = regexp.MustCompile(`^---\n([\s\S]+?)---`)

	// captionRegexp matches a markdown image caption; captions may span lines.
	captionRegexp = regexp.MustCompile(`(?s)!\[(.*?)\]\(`)
)

// StripHeader removes the leading metadata block, if any.
func StripHeader(text string) string {
	loc := headerRegexp.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[loc[1]:]
}

// HeaderIndex returns the byte offsets [start, end) of the metadata block
// content, excluding both delimiters. ok is false when there is no block.
func HeaderIndex(text string) (start, end int, ok bool) {
	loc := headerRegexp.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[2], loc[3], true
}

// Header returns the metadata block content without delimiters.
func Header(text string) (string, bool) {
	start, end, ok := HeaderIndex(text)
	if !ok {
		return "", false
	}
	return text[start:end], true
}

// Tags returns every token outside the metadata block in order of
// appearance, duplicates included.
func Tags(text string) []tag.Token {
	return findTokens(StripHeader(text))
}

// Ranges returns the boundaries of every range expression in the text, in
// match order.
func Ranges(text string) []tag.Range {
	matches := tag.RangeRegexp.FindAllString(text, -1)
	ranges := make([]tag.Range, 0, len(matches))
	for _, m := range matches {
		// RangeRegexp guarantees exactly two tokens per match.
		r, err := tag.ParseRange(m)
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// TextMentions returns tokens mentioned in body text only: the metadata
// block and all image captions are removed first.
func TextMentions(text string) []tag.Token {
	body := StripHeader(text)
	body = captionRegexp.ReplaceAllString(body, "")
	return findTokens(body)
}

// ImageCaptions returns the raw content of every image caption in document
// order.
func ImageCaptions(text string) []string {
	matches := captionRegexp.FindAllStringSubmatch(text, -1)
	captions := make([]string, 0, len(matches))
	for _, m := range matches {
		captions = append(captions, m[1])
	}
	return captions
}

// TagsFromCaptions returns the tokens found in the given captions,
// concatenated in input order.
func TagsFromCaptions(captions []string) []tag.Token {
	var tokens []tag.Token
	for _, c := range captions {
		tokens = append(tokens, findTokens(c)...)
	}
	return tokens
}

func findTokens(text string) []tag.Token {
	hits := tag.TokenRegexp.FindAllString(text, -1)
	tokens := make([]tag.Token, len(hits))
	for i, h := range hits {
		tokens[i] = tag.Token(h)
	}
	return tokens
}
