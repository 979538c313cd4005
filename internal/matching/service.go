package matching

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/team-matcher/internal/logging"
	"github.com/jonathan/team-matcher/internal/profiles"
	"github.com/jonathan/team-matcher/internal/types"
)

// Service ranks and scores profiles held in a profiles.Store
type Service struct {
	store    profiles.Store
	logger   *zap.Logger
	defaults RankOptions
}

// NewService creates a matching service. A nil logger disables logging.
// MatchesFor takes MinScore and Limit as given and falls back to defaults only for Workers.
func NewService(store profiles.Store, logger *zap.Logger, defaults RankOptions) *Service {
	return &Service{store: store, logger: logging.Component(logger, "matching"), defaults: defaults}
}

// MatchesFor ranks every stored profile against userID, leaving out profiles userID has dismissed.
func (s *Service) MatchesFor(ctx context.Context, userID string, opts RankOptions) (*types.RankedMatches, error) {
	requester, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	dismissed, err := s.store.Dismissed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dismissed matches: %w", err)
	}

	if opts.Workers == 0 {
		opts.Workers = s.defaults.Workers
	}
	if len(dismissed) > 0 {
		exclude := make(map[string]struct{}, len(dismissed)+len(opts.Exclude))
		for id := range opts.Exclude {
			exclude[id] = struct{}{}
		}
		for id := range dismissed {
			exclude[id] = struct{}{}
		}
		opts.Exclude = exclude
	}

	ranked, err := Rank(*requester, candidates, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("ranked matches",
		zap.String(logging.FieldUserID, userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("dismissed", len(dismissed)),
		zap.Int("returned", len(ranked.Matches)),
		zap.Int("skipped", ranked.Skipped),
	)
	if ranked.Skipped > 0 {
		s.logger.Warn("skipped invalid candidate profiles",
			zap.String(logging.FieldUserID, userID),
			zap.Int("skipped", ranked.Skipped),
		)
	}

	return ranked, nil
}

// MatchPair scores userID against otherID.
func (s *Service) MatchPair(ctx context.Context, userID, otherID string) (*types.MatchResult, error) {
	a, b, err := s.loadPair(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	result, err := ScorePair(*a, *b)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Dismiss hides otherID from userID's future matches.
func (s *Service) Dismiss(ctx context.Context, userID, otherID string) error {
	if _, _, err := s.loadPair(ctx, userID, otherID); err != nil {
		return err
	}
	if err := s.store.Dismiss(ctx, userID, otherID); err != nil {
		return fmt.Errorf("failed to dismiss match: %w", err)
	}

	s.logger.Info("dismissed match", zap.String(logging.FieldUserID, userID), zap.String(logging.FieldCandidateID, otherID))
	return nil
}

func (s *Service) loadPair(ctx context.Context, userID, otherID string) (*types.Profile, *types.Profile, error) {
	if userID == otherID {
		return nil, nil, &InvalidInputError{Field: "id", Message: fmt.Sprintf("cannot match profile %s with itself", userID)}
	}

	a, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.store.Get(ctx, otherID)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Defaults returns the ranking options the service was configured with.
func (s *Service) Defaults() RankOptions {
	return s.defaults
}
