package service

import (
	"context"
	"time"

	"activity-insights-be/internal/config"
	"activity-insights-be/internal/dto"
	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/pkg/logger"
	"activity-insights-be/internal/repository/memory"
	"activity-insights-be/internal/repository/specification"
	"activity-insights-be/internal/repository/unitofwork"
	"activity-insights-be/pkg/matching"

	"github.com/google/uuid"
)

type ISuggestionService interface {
	// GetSuggestions matches the user's recent activity against the
	// template catalog, relaxing thresholds for young accounts.
	GetSuggestions(ctx context.Context, userId uuid.UUID) ([]*dto.TemplateSuggestionResponse, error)
	// GetMinedPatterns lists the user's mined patterns, strongest first.
	GetMinedPatterns(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.MinedPatternResponse, error)
}

type suggestionService struct {
	uowFactory    unitofwork.RepositoryFactory
	matcher       *matching.Matcher
	templateCache *memory.TemplateCache
	sysLogger     logger.ILogger
	miningCfg     config.MiningConfig
}

func NewSuggestionService(
	uowFactory unitofwork.RepositoryFactory,
	matcher *matching.Matcher,
	templateCache *memory.TemplateCache,
	sysLogger logger.ILogger,
	miningCfg config.MiningConfig,
) ISuggestionService {
	return &suggestionService{
		uowFactory:    uowFactory,
		matcher:       matcher,
		templateCache: templateCache,
		sysLogger:     sysLogger,
		miningCfg:     miningCfg,
	}
}

func (s *suggestionService) GetSuggestions(ctx context.Context, userId uuid.UUID) ([]*dto.TemplateSuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []*dto.TemplateSuggestionResponse{}, nil
	}

	since := time.Now().AddDate(0, 0, -s.miningCfg.WindowDays)
	events, err := uow.EventRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OccurredSince{Since: since},
		specification.OrderByOccurrence{},
		specification.Pagination{Limit: s.miningCfg.EventCap},
	)
	if err != nil {
		return nil, err
	}

	templates, err := s.loadCatalog(ctx, uow)
	if err != nil {
		return nil, err
	}

	ageDays := user.AccountAgeDays(time.Now())
	matches := s.matcher.SuggestionsForNewUsers(events, templates, ageDays)

	s.sysLogger.Debug("suggestions", "template matching done", map[string]interface{}{
		"user_id":          userId,
		"events":           len(events),
		"templates":        len(templates),
		"account_age_days": ageDays,
		"matches":          len(matches),
	})

	response := make([]*dto.TemplateSuggestionResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, &dto.TemplateSuggestionResponse{
			TemplateId:      m.TemplateId,
			Name:            m.Name,
			Category:        m.Category,
			Confidence:      m.Confidence,
			MatchedEventIds: m.MatchedEventIds,
			Reason:          m.Reason,
		})
	}
	return response, nil
}

func (s *suggestionService) GetMinedPatterns(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.MinedPatternResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	patterns, err := uow.PatternRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "support", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.MinedPatternResponse, 0, len(patterns))
	for _, p := range patterns {
		response = append(response, &dto.MinedPatternResponse{
			Id:         p.Id,
			Sequence:   p.Sequence,
			Support:    p.Support,
			Confidence: p.Confidence,
			FirstSeen:  p.FirstSeen,
			LastSeen:   p.LastSeen,
		})
	}
	return response, nil
}

// loadCatalog serves the enabled templates from the in-memory cache,
// falling back to the store on a miss. The catalog is small and static
// enough that a short TTL covers edits.
func (s *suggestionService) loadCatalog(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Template, error) {
	if templates, ok := s.templateCache.Get(); ok {
		return templates, nil
	}

	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.EnabledOnly{},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	s.templateCache.Set(templates)
	return templates, nil
}
