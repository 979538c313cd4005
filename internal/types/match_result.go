// Package types provides type definitions for structured data used throughout the team-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Quality bands for an overall score
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityFair      = "fair"
	QualityLow       = "low"
)

// MatchResult represents the scored, explained comparison between two profiles
type MatchResult struct {
	UserID            string   `json:"user_id"`
	CandidateID       string   `json:"candidate_id"`
	Overall           int      `json:"overall"`
	SkillMatch        int      `json:"skill_match"`
	GoalAlignment     int      `json:"goal_alignment"`
	WorkStyleMatch    int      `json:"work_style_match"`
	ExperienceBalance int      `json:"experience_balance"`
	Reasons           []string `json:"reasons"`
	Quality           string   `json:"quality"`
	// SharedSkills and SharedGoals hold the normalized intersection, sorted
	SharedSkills []string `json:"shared_skills"`
	SharedGoals  []string `json:"shared_goals"`
	// ComplementarySkills are the candidate's skills the user does not have
	ComplementarySkills []string `json:"complementary_skills"`
}

// RankedMatches represents a user's candidates sorted by overall score (descending)
type RankedMatches struct {
	UserID  string        `json:"user_id"`
	Matches []MatchResult `json:"matches"`
	// Skipped counts candidates dropped because they failed pair validation
	Skipped int `json:"skipped,omitempty"`
}

// QualityFor maps an overall score onto its quality band.
func QualityFor(overall int) string {
	switch {
	case overall >= 80:
		return QualityExcellent
	case overall >= 60:
		return QualityGood
	case overall >= 40:
		return QualityFair
	default:
		return QualityLow
	}
}
