package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/team-matcher/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		UserID:              "user_001",
		CandidateID:         "user_004",
		Overall:             90,
		SkillMatch:          75,
		GoalAlignment:       100,
		WorkStyleMatch:      100,
		ExperienceBalance:   90,
		Quality:             types.QualityExcellent,
		Reasons:             []string{"Similar goals and vision"},
		SharedSkills:        []string{"Node.js", "PostgreSQL"},
		ComplementarySkills: []string{"Go"},
	})
	output := buf.String()

	assert.Contains(t, output, "MATCH")
	assert.Contains(t, output, "user_001 ↔ user_004")
	assert.Contains(t, output, "Overall:     90 (excellent)")
	assert.Contains(t, output, "Node.js, PostgreSQL")
	assert.Contains(t, output, "Brings:        Go")
	assert.Contains(t, output, "Similar goals and vision")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := &types.RankedMatches{UserID: "user_001", Skipped: 2}
	for i := 0; i < 7; i++ {
		ranked.Matches = append(ranked.Matches, types.MatchResult{
			CandidateID: fmt.Sprintf("cand_%d", i),
			Overall:     90 - i*10,
			Quality:     types.QualityFor(90 - i*10),
			Reasons:     []string{"Complementary experience levels"},
		})
	}

	p.PrintRankedMatches(ranked)
	output := buf.String()

	assert.Contains(t, output, "RANKED MATCHES")
	assert.Contains(t, output, "Matches: 7 (2 invalid profiles skipped)")
	assert.Contains(t, output, "#1  cand_0")
	assert.Contains(t, output, "#5  cand_4")
	assert.NotContains(t, output, "cand_5")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintRankedMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedMatches(&types.RankedMatches{UserID: "user_001"})

	assert.Contains(t, buf.String(), "Matches: 0")
}

func TestJoinLimited(t *testing.T) {
	assert.Equal(t, "a, b", joinLimited([]string{"a", "b"}))
	assert.Equal(t, "a, b, c, d, e +2", joinLimited([]string{"a", "b", "c", "d", "e", "f", "g"}))
}
