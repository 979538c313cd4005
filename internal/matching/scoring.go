// Package matching scores pairs of user profiles for team formation and ranks candidates.
package matching

import (
	"math"

	"github.com/jonathan/team-matcher/internal/parsing"
)

// Weights for each scoring dimension; they sum to 1.0
const (
	skillMatchWeight        = 0.35
	goalAlignmentWeight     = 0.30
	workStyleMatchWeight    = 0.20
	experienceBalanceWeight = 0.15
)

// neutralScore is used for a dimension when neither profile has any tags for it.
const neutralScore = 50

// experienceDecayPerYear is how many points experience balance loses per year of difference.
const experienceDecayPerYear = 10.0

// reasonThreshold is the sub-score a dimension must exceed to produce a positive reason.
const reasonThreshold = 70

// diversityThreshold is the skill score below which the diversity reason is added.
const diversityThreshold = 50

// computeOverlapScore returns round(min(100, common/max(|a|,|b|)*100)) along with the common tags.
// When both sets are empty it returns the neutral score.
func computeOverlapScore(a, b parsing.TagSet) (int, []string) {
	common := a.Intersect(b)

	denom := max(a.Len(), b.Len())
	if denom == 0 {
		return neutralScore, common
	}

	score := math.Min(100, float64(len(common))/float64(denom)*100)
	return int(math.Round(score)), common
}

// computeExperienceBalance applies linear decay: 100 minus ten points per year of difference, floored at 0.
// A NaN difference scores 0 like an unbounded one.
func computeExperienceBalance(a, b float64) int {
	diff := math.Abs(a - b)
	if math.IsNaN(diff) {
		return 0
	}
	score := math.Max(0, 100-diff*experienceDecayPerYear)
	return int(math.Round(score))
}

// computeOverall combines the rounded sub-scores with the dimension weights.
func computeOverall(skill, goal, workStyle, experience int) int {
	weighted := float64(skill)*skillMatchWeight +
		float64(goal)*goalAlignmentWeight +
		float64(workStyle)*workStyleMatchWeight +
		float64(experience)*experienceBalanceWeight

	// Ensure score is in valid range
	weighted = math.Max(0, math.Min(100, weighted))

	return int(math.Round(weighted))
}
