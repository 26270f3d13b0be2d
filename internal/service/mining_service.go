package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"activity-insights-be/internal/config"
	"activity-insights-be/internal/dto"
	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/pkg/logger"
	"activity-insights-be/internal/repository/specification"
	"activity-insights-be/internal/repository/unitofwork"
	pkgEvents "activity-insights-be/pkg/events"
	pktNats "activity-insights-be/pkg/nats"
	"activity-insights-be/pkg/sequence"

	"github.com/google/uuid"
)

// ErrEventFetch marks a store failure while reading a user's events. The
// batch recovers per user: the failure is logged, the user contributes 0
// patterns, and the batch continues.
var ErrEventFetch = errors.New("event fetch failed")

type IMiningService interface {
	// MinePatternsForUser runs one mining pass for one user and returns
	// the number of patterns successfully stored.
	MinePatternsForUser(ctx context.Context, userId uuid.UUID) (int, error)
	// MineAllUsers runs MinePatternsForUser for every user with recent
	// activity. A user-level failure never aborts the batch.
	MineAllUsers(ctx context.Context) (*dto.MiningRunSummary, error)
}

type miningService struct {
	uowFactory     unitofwork.RepositoryFactory
	miningLogger   logger.ILogger
	eventPublisher *pktNats.Publisher
	cfg            config.MiningConfig
}

func NewMiningService(
	uowFactory unitofwork.RepositoryFactory,
	miningLogger logger.ILogger,
	eventPublisher *pktNats.Publisher,
	cfg config.MiningConfig,
) IMiningService {
	return &miningService{
		uowFactory:     uowFactory,
		miningLogger:   miningLogger,
		eventPublisher: eventPublisher,
		cfg:            cfg,
	}
}

func (s *miningService) MinePatternsForUser(ctx context.Context, userId uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	since := time.Now().AddDate(0, 0, -s.cfg.WindowDays)

	events, err := uow.EventRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OccurredSince{Since: since},
		specification.OrderByOccurrence{},
		specification.Pagination{Limit: s.cfg.EventCap},
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEventFetch, err)
	}

	if len(events) < sequence.MinRunLength {
		return 0, nil // too sparse to mine
	}

	runs := sequence.SegmentRuns(events)
	if len(runs) == 0 {
		return 0, nil
	}

	candidates := sequence.CountWindows(runs, s.cfg.MinPatternLen, s.cfg.MaxPatternLen)

	stored := 0
	for _, cand := range candidates.AtLeast(s.cfg.SupportThreshold) {
		// Confidence is support over the run total. It can exceed 1 when
		// one run yields multiple occurrences of the same subsequence;
		// the raw ratio is stored on purpose, unclamped.
		confidence := math.Round(float64(cand.Support)/float64(candidates.TotalRuns)*1000) / 1000

		pattern := &entity.Pattern{
			Id:         uuid.New(),
			UserId:     userId,
			Sequence:   cand.Tokens,
			Support:    cand.Support,
			Confidence: confidence,
			FirstSeen:  cand.FirstSeen,
			LastSeen:   cand.LastSeen,
		}

		if err := uow.PatternRepository().Upsert(ctx, pattern); err != nil {
			s.miningLogger.Error("mining", "pattern upsert failed", map[string]interface{}{
				"user_id":  userId,
				"sequence": pattern.SequenceKey(),
				"error":    err.Error(),
			})
			continue
		}
		stored++
	}

	s.miningLogger.Info("mining", "mining pass completed", map[string]interface{}{
		"user_id":         userId,
		"events":          len(events),
		"runs":            len(runs),
		"candidates":      candidates.Len(),
		"patterns_stored": stored,
	})

	// Auxiliary notification; publish failure never fails the pass.
	if s.eventPublisher != nil && stored > 0 {
		if err := s.eventPublisher.Publish(ctx, pkgEvents.NewPatternsMinedEvent(userId, stored)); err != nil {
			s.miningLogger.Warn("mining", "failed to publish PATTERNS_MINED event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	return stored, nil
}

func (s *miningService) MineAllUsers(ctx context.Context) (*dto.MiningRunSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	since := time.Now().AddDate(0, 0, -s.cfg.WindowDays)

	userIds, err := uow.EventRepository().DistinctUserIdsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventFetch, err)
	}

	summary := &dto.MiningRunSummary{}
	for _, userId := range userIds {
		stored, err := s.MinePatternsForUser(ctx, userId)
		if err != nil {
			summary.UsersFailed++
			s.miningLogger.Error("mining", "user mining failed", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
			continue
		}
		summary.UsersProcessed++
		summary.PatternsStored += stored
	}

	s.miningLogger.Info("mining", "batch completed", map[string]interface{}{
		"users_processed": summary.UsersProcessed,
		"users_failed":    summary.UsersFailed,
		"patterns_stored": summary.PatternsStored,
	})

	return summary, nil
}
