package matching

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/team-matcher/internal/types"
)

// RankOptions controls which candidates Rank keeps and how it scores them
type RankOptions struct {
	// MinScore drops results whose overall score is below it (0 keeps everything)
	MinScore int
	// Limit caps the number of results (0 means no cap)
	Limit int
	// Workers > 1 scores candidates concurrently
	Workers int
	// Exclude holds candidate ids that must never be returned (e.g. dismissed users)
	Exclude map[string]struct{}
}

// Rank scores the requester against every candidate and returns results sorted by overall score (descending).
// Candidates with the requester's id or an excluded id are skipped silently;
// candidates that fail pair validation are skipped and counted in Skipped.
func Rank(requester types.Profile, candidates []types.Profile, opts RankOptions) (*types.RankedMatches, error) {
	if err := validateProfile("requester", requester); err != nil {
		return nil, err
	}

	eligible := make([]types.Profile, 0, len(candidates))
	skipped := 0
	for _, candidate := range candidates {
		if candidate.ID == requester.ID {
			continue
		}
		if _, excluded := opts.Exclude[candidate.ID]; excluded {
			continue
		}
		if err := ValidatePair(requester, candidate); err != nil {
			skipped++
			continue
		}
		eligible = append(eligible, candidate)
	}

	results := scoreAll(requester, eligible, opts.Workers)

	matches := make([]types.MatchResult, 0, len(results))
	for _, result := range results {
		if result.Overall >= opts.MinScore {
			matches = append(matches, result)
		}
	}

	SortMatches(matches)

	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	return &types.RankedMatches{
		UserID:  requester.ID,
		Matches: matches,
		Skipped: skipped,
	}, nil
}

// scoreAll scores each candidate against the requester, in candidate order.
func scoreAll(requester types.Profile, candidates []types.Profile, workers int) []types.MatchResult {
	results := make([]types.MatchResult, len(candidates))

	if workers <= 1 || len(candidates) < 2 {
		for i, candidate := range candidates {
			results[i] = Score(requester, candidate)
		}
		return results
	}

	// Each goroutine writes its own index, so no further synchronization is needed
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range candidates {
		g.Go(func() error {
			results[i] = Score(requester, candidates[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// SortMatches sorts results by overall score (descending), then by candidate id (ascending).
func SortMatches(matches []types.MatchResult) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Overall == matches[j].Overall {
			return matches[i].CandidateID < matches[j].CandidateID
		}
		return matches[i].Overall > matches[j].Overall
	})
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
