package pipeline

import "strings"

// Target is the phrase being searched for, together with the normalized
// candidate forms matched against recognized text. It is immutable for the
// duration of one run.
type Target struct {
	raw        string
	candidates []string
}

// NewTarget builds a target from the user-supplied string.
//
// The lower-cased string is always a candidate. When the raw string
// contains underscores a second candidate with underscores replaced by
// spaces is added, because usernames stored as "john_doe" are often
// rendered as "john doe" in on-screen UI.
//
// An empty raw string yields a single empty candidate, which matches every
// region (substring containment of "" always holds).
func NewTarget(raw string) Target {
	lower := strings.ToLower(raw)
	t := Target{
		raw:        raw,
		candidates: []string{lower},
	}
	if strings.Contains(lower, "_") {
		t.candidates = append(t.candidates, strings.ReplaceAll(lower, "_", " "))
	}
	return t
}

// Raw returns the string the target was built from.
func (t Target) Raw() string {
	return t.raw
}

// Candidates returns a copy of the normalized candidate strings.
func (t Target) Candidates() []string {
	return append([]string(nil), t.candidates...)
}

// Matches reports whether the normalized recognized text contains any
// candidate as a substring. Containment rather than equality, because OCR
// routinely picks up characters surrounding the target.
func (t Target) Matches(recognized string) bool {
	norm := Normalize(recognized)
	for _, c := range t.candidates {
		if strings.Contains(norm, c) {
			return true
		}
	}
	return false
}

// Normalize prepares recognized text for matching: lower-case and strip
// the periods and commas Tesseract tends to insert as noise. Applying it
// twice yields the same string.
func Normalize(text string) string {
	text = strings.ToLower(text)
	return strings.Map(func(r rune) rune {
		if r == '.' || r == ',' {
			return -1
		}
		return r
	}, text)
}
