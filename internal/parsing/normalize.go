// Package parsing provides normalization of the free-form tags users enter on their profiles.
package parsing

import (
	"strings"
)

// tagAliases maps alternate spellings of the same technology to one canonical name.
// Abbreviations and broader terms (js, node, ux) stay distinct tags.
var tagAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeTag normalizes a tag to its canonical form.
// Whitespace is trimmed and collapsed; known aliases resolve case-insensitively;
// anything else keeps the casing the user typed.
func NormalizeTag(tag string) string {
	normalized := strings.Join(strings.Fields(tag), " ")
	if normalized == "" {
		return ""
	}

	if canonical, ok := tagAliases[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

// TagKey returns the comparison key for a tag. Two tags are the same when their keys are equal.
func TagKey(tag string) string {
	return strings.ToLower(NormalizeTag(tag))
}

// TagSet is an insertion-ordered set of normalized tags compared case-insensitively.
// The zero value is an empty set.
type TagSet struct {
	order []string
	index map[string]struct{}
}

// NewTagSet builds a set from raw tags, dropping blanks and duplicates.
// The first spelling of a duplicated tag is the one kept.
func NewTagSet(tags []string) TagSet {
	s := TagSet{
		order: make([]string, 0, len(tags)),
		index: make(map[string]struct{}, len(tags)),
	}
	for _, tag := range tags {
		canonical := NormalizeTag(tag)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if _, seen := s.index[key]; seen {
			continue
		}
		s.index[key] = struct{}{}
		s.order = append(s.order, canonical)
	}
	return s
}

// Len returns the number of distinct tags.
func (s TagSet) Len() int {
	return len(s.order)
}

// Contains reports whether the set holds the tag (after normalization).
func (s TagSet) Contains(tag string) bool {
	_, ok := s.index[TagKey(tag)]
	return ok
}

// Values returns the canonical tags in insertion order.
func (s TagSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Intersect returns the tags present in both sets, in the receiver's order.
func (s TagSet) Intersect(other TagSet) []string {
	common := make([]string, 0)
	for _, tag := range s.order {
		if other.Contains(tag) {
			common = append(common, tag)
		}
	}
	return common
}

// Difference returns the tags in the receiver that are absent from other, in the receiver's order.
func (s TagSet) Difference(other TagSet) []string {
	diff := make([]string, 0)
	for _, tag := range s.order {
		if !other.Contains(tag) {
			diff = append(diff, tag)
		}
	}
	return diff
}
