package matching

import (
	"fmt"

	"github.com/jonathan/team-matcher/internal/parsing"
	"github.com/jonathan/team-matcher/internal/types"
)

// Reason strings, in the order they are evaluated
const (
	ReasonAlignedGoals      = "Aligned goals and vision"
	ReasonCompatibleStyles  = "Compatible work styles"
	ReasonExperienceBalance = "Complementary experience levels"
	ReasonDiverseSkills     = "Diverse skill sets - great for learning"
)

// ReasonStrongSkillOverlap formats the skill-overlap reason for n shared skills.
func ReasonStrongSkillOverlap(n int) string {
	return fmt.Sprintf("Strong skill overlap (%d shared skills)", n)
}

// Score computes the compatibility of two profiles.
//
// It is pure: it reads only its arguments, never mutates them, and returns the
// same result for the same inputs. Every score field is symmetric in a and b.
// Score does not validate its inputs; use ScorePair at a trust boundary.
func Score(a, b types.Profile) types.MatchResult {
	skillsA, skillsB := parsing.NewTagSet(a.Skills), parsing.NewTagSet(b.Skills)
	goalsA, goalsB := parsing.NewTagSet(a.Goals), parsing.NewTagSet(b.Goals)
	stylesA, stylesB := parsing.NewTagSet(a.WorkStyle), parsing.NewTagSet(b.WorkStyle)

	skillMatch, sharedSkills := computeOverlapScore(skillsA, skillsB)
	goalAlignment, sharedGoals := computeOverlapScore(goalsA, goalsB)
	workStyleMatch, _ := computeOverlapScore(stylesA, stylesB)
	experienceBalance := computeExperienceBalance(a.Experience, b.Experience)

	overall := computeOverall(skillMatch, goalAlignment, workStyleMatch, experienceBalance)

	return types.MatchResult{
		UserID:              a.ID,
		CandidateID:         b.ID,
		Overall:             overall,
		SkillMatch:          skillMatch,
		GoalAlignment:       goalAlignment,
		WorkStyleMatch:      workStyleMatch,
		ExperienceBalance:   experienceBalance,
		Reasons:             generateReasons(skillMatch, goalAlignment, workStyleMatch, experienceBalance, len(sharedSkills)),
		Quality:             types.QualityFor(overall),
		SharedSkills:        sortedCopy(sharedSkills),
		SharedGoals:         sortedCopy(sharedGoals),
		ComplementarySkills: skillsB.Difference(skillsA),
	}
}

// ScorePair validates the pair and then scores it.
func ScorePair(a, b types.Profile) (types.MatchResult, error) {
	if err := ValidatePair(a, b); err != nil {
		return types.MatchResult{}, err
	}
	return Score(a, b), nil
}

// generateReasons lists human-readable explanations in fixed dimension order.
// The result is never nil.
func generateReasons(skillMatch, goalAlignment, workStyleMatch, experienceBalance, sharedSkills int) []string {
	reasons := make([]string, 0, 5)

	if skillMatch > reasonThreshold {
		reasons = append(reasons, ReasonStrongSkillOverlap(sharedSkills))
	}
	if goalAlignment > reasonThreshold {
		reasons = append(reasons, ReasonAlignedGoals)
	}
	if workStyleMatch > reasonThreshold {
		reasons = append(reasons, ReasonCompatibleStyles)
	}
	if experienceBalance > reasonThreshold {
		reasons = append(reasons, ReasonExperienceBalance)
	}
	if skillMatch < diversityThreshold {
		reasons = append(reasons, ReasonDiverseSkills)
	}

	return reasons
}
