package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to Go", "Golang", "Go"},
		{"GOLANG to Go", "GOLANG", "Go"},
		{"go lang to Go", "go  lang", "Go"},
		{"javascript to JavaScript", "javascript", "JavaScript"},
		{"JS is not expanded", "JS", "JS"},
		{"node is not expanded", "node", "node"},
		{"UX is not expanded", "UX", "UX"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"Node.js stays Node.js", "Node.js", "Node.js"},
		{"postgres to PostgreSQL", "postgres", "PostgreSQL"},
		{"Unknown keeps casing", "User Research", "User Research"},
		{"Slash tag kept", "UI/UX Design", "UI/UX Design"},
		{"Trims whitespace", "  Figma ", "Figma"},
		{"Collapses inner whitespace", "Design   Systems", "Design Systems"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTag(tt.input))
		})
	}
}

func TestTagKey_CaseInsensitive(t *testing.T) {
	assert.Equal(t, TagKey("React"), TagKey("react"))
	assert.Equal(t, TagKey("reactjs"), TagKey("React"))
	assert.NotEqual(t, TagKey("React"), TagKey("Vue"))
}

func TestNewTagSet_AbbreviationsStayDistinct(t *testing.T) {
	a := NewTagSet([]string{"UX", "node"})
	b := NewTagSet([]string{"UX Design", "Node.js"})

	assert.Empty(t, a.Intersect(b))
}

func TestNewTagSet_Deduplicates(t *testing.T) {
	s := NewTagSet([]string{"React", "react", "ReactJS", "", "  ", "Go", "golang"})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"React", "Go"}, s.Values())
}

func TestTagSet_ZeroValue(t *testing.T) {
	var s TagSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("Go"))
	assert.Empty(t, s.Values())
	assert.Empty(t, s.Intersect(NewTagSet([]string{"Go"})))
}

func TestTagSet_Intersect(t *testing.T) {
	a := NewTagSet([]string{"React", "Node.js", "TypeScript", "PostgreSQL"})
	b := NewTagSet([]string{"postgres", "typescript", "Figma"})

	assert.Equal(t, []string{"TypeScript", "PostgreSQL"}, a.Intersect(b))
	assert.Len(t, b.Intersect(a), 2)
}

func TestTagSet_Difference(t *testing.T) {
	a := NewTagSet([]string{"React", "Node.js"})
	b := NewTagSet([]string{"React", "Figma", "Prototyping"})

	assert.Equal(t, []string{"Figma", "Prototyping"}, b.Difference(a))
	assert.Equal(t, []string{"Node.js"}, a.Difference(b))
}

func TestTagSet_ValuesIsCopy(t *testing.T) {
	s := NewTagSet([]string{"Go"})
	values := s.Values()
	values[0] = "Rust"
	assert.True(t, s.Contains("Go"))
	assert.Equal(t, []string{"Go"}, s.Values())
}
