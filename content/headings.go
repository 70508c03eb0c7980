package content

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reHeadingLine = regexp.MustCompile(`(?m)^(##|###)\s+(.+)$`)
	reInlineLink  = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	reInlineMarks = regexp.MustCompile("[`*_~]")
	reInlineTags  = regexp.MustCompile(`<[^>]*>`)
	rePunctuation = regexp.MustCompile(`[!"#$%&'()*+,./:;<=>?@\[\\\]^` + "`" + `{|}~]`)
	reWhitespace  = regexp.MustCompile(`\s+`)
	reHyphenRuns  = regexp.MustCompile(`-+`)
)

// NormalizeHeadingText strips link syntax, emphasis/code markers, and
// embedded tag-like substrings from a heading's raw markdown text,
// leaving the visible display text.
func NormalizeHeadingText(text string) string {
	text = reInlineLink.ReplaceAllString(text, "$1")
	text = reInlineMarks.ReplaceAllString(text, "")
	text = reInlineTags.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SlugifyHeading converts heading text to a URL-fragment-safe identifier:
// lowercase, punctuation stripped, whitespace runs collapsed to single
// hyphens. Input that reduces to nothing falls back to "section".
func SlugifyHeading(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = rePunctuation.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, "-")
	s = reHyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "section"
	}
	return s
}

// HeadingID derives the base anchor identifier for a heading's raw text,
// before collision counting. The markdown renderer uses this so rendered
// anchors always match the ids that ExtractHeadings produces.
func HeadingID(text string) string {
	return SlugifyHeading(NormalizeHeadingText(text))
}

// ExtractHeadings scans body for level-2 and level-3 markdown headings in
// encounter order. Headings whose stripped text is empty are skipped.
// Duplicate identifiers resolve by numeric suffix: the first occurrence
// keeps the bare id, later ones get -2, -3, ... counted per base id.
func ExtractHeadings(body string) []Heading {
	matches := reHeadingLine.FindAllStringSubmatch(body, -1)
	headings := make([]Heading, 0, len(matches))
	counts := make(map[string]int, len(matches))

	for _, m := range matches {
		text := NormalizeHeadingText(m[2])
		if text == "" {
			continue
		}
		level := 2
		if m[1] == "###" {
			level = 3
		}
		base := SlugifyHeading(text)
		counts[base]++
		id := base
		if counts[base] > 1 {
			id = base + "-" + strconv.Itoa(counts[base])
		}
		headings = append(headings, Heading{ID: id, Level: level, Text: text})
	}
	return headings
}
