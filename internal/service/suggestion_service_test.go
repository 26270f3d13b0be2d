package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/repository/memory"
	"activity-insights-be/internal/repository/specification"
	"activity-insights-be/pkg/matching"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestionService(factory *fakeRepositoryFactory) ISuggestionService {
	return NewSuggestionService(
		factory,
		matching.NewMatcher(matching.DefaultConfig()),
		memory.NewTemplateCache(time.Minute),
		nopLogger{},
		miningTestConfig(),
	)
}

func testUser(createdDaysAgo int) *entity.User {
	return &entity.User{
		Id:        uuid.New(),
		Email:     "jamie@example.com",
		FullName:  "Jamie Doe",
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now().AddDate(0, 0, -createdDaysAgo),
	}
}

func strictTemplate() *entity.Template {
	view := "view"
	cart := "cart"
	return &entity.Template{
		Id:       uuid.New(),
		Name:     "Add To Cart",
		Category: "shopping",
		Steps: []entity.TemplateStep{
			{TextContains: &view},
			{TextContains: &cart},
		},
		Criteria:            entity.MatchCriteria{MinSupport: 1},
		ConfidenceThreshold: 0.95,
		Enabled:             true,
	}
}

func shoppingEvents(userId uuid.UUID) []*entity.Event {
	return []*entity.Event{
		recentEvent(userId, entity.EventKindClick, "https://shop.com/item", "view item", 30),
		recentEvent(userId, entity.EventKindClick, "https://shop.com/item", "add to cart", 29),
		recentEvent(userId, entity.EventKindClick, "https://shop.com/cart", "checkout", 28),
	}
}

func TestGetSuggestionsUnknownUser(t *testing.T) {
	factory, _ := newFakeFactory()
	svc := newSuggestionService(factory)

	suggestions, err := svc.GetSuggestions(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestGetSuggestionsUserLookupError(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.users.err = errors.New("connection refused")
	svc := newSuggestionService(factory)

	_, err := svc.GetSuggestions(context.Background(), uuid.New())

	require.Error(t, err)
}

func TestGetSuggestionsColdStartRelaxesThreshold(t *testing.T) {
	tpl := strictTemplate()

	t.Run("new account gets the suggestion", func(t *testing.T) {
		factory, uow := newFakeFactory()
		user := testUser(2)
		uow.users.user = user
		uow.events.eventsByUser[user.Id] = shoppingEvents(user.Id)
		uow.templates.templates = []*entity.Template{tpl}

		svc := newSuggestionService(factory)
		suggestions, err := svc.GetSuggestions(context.Background(), user.Id)

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		got := suggestions[0]
		assert.Equal(t, tpl.Id, got.TemplateId)
		assert.Equal(t, "Add To Cart", got.Name)
		assert.Equal(t, "shopping", got.Category)
		assert.Equal(t, 0.9, got.Confidence)
		assert.Len(t, got.MatchedEventIds, 2)
		assert.Equal(t, "1 matching sequences (90% confidence)", got.Reason)
	})

	t.Run("established account does not", func(t *testing.T) {
		factory, uow := newFakeFactory()
		user := testUser(30)
		uow.users.user = user
		uow.events.eventsByUser[user.Id] = shoppingEvents(user.Id)
		uow.templates.templates = []*entity.Template{tpl}

		svc := newSuggestionService(factory)
		suggestions, err := svc.GetSuggestions(context.Background(), user.Id)

		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	// Matching must never write the relaxation back to the catalog.
	assert.Equal(t, 0.95, tpl.ConfidenceThreshold)
	assert.Equal(t, 1, tpl.Criteria.MinSupport)
}

func TestGetSuggestionsCachesCatalog(t *testing.T) {
	factory, uow := newFakeFactory()
	user := testUser(30)
	uow.users.user = user
	uow.events.eventsByUser[user.Id] = shoppingEvents(user.Id)
	uow.templates.templates = []*entity.Template{strictTemplate()}

	svc := newSuggestionService(factory)
	_, err := svc.GetSuggestions(context.Background(), user.Id)
	require.NoError(t, err)
	_, err = svc.GetSuggestions(context.Background(), user.Id)
	require.NoError(t, err)

	assert.Equal(t, 1, uow.templates.findCalls)
}

func TestGetMinedPatterns(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()
	now := time.Now()
	uow.patterns.patterns = []*entity.Pattern{
		{
			Id:         uuid.New(),
			UserId:     userId,
			Sequence:   []string{"click:shop.com", "click:shop.com", "click:shop.com"},
			Support:    5,
			Confidence: 1.667,
			FirstSeen:  now.Add(-48 * time.Hour),
			LastSeen:   now.Add(-time.Hour),
		},
	}

	svc := newSuggestionService(factory)
	patterns, err := svc.GetMinedPatterns(context.Background(), userId, 10, 0)

	require.NoError(t, err)
	require.Len(t, patterns, 1)
	got := patterns[0]
	assert.Equal(t, uow.patterns.patterns[0].Id, got.Id)
	assert.Equal(t, 5, got.Support)
	assert.Equal(t, 1.667, got.Confidence)
	assert.Equal(t, []string{"click:shop.com", "click:shop.com", "click:shop.com"}, got.Sequence)
}

func TestGetMinedPatternsClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero falls back to default", 0, 20},
		{"negative falls back to default", -5, 20},
		{"oversized falls back to default", 500, 20},
		{"in range kept", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, uow := newFakeFactory()
			svc := newSuggestionService(factory)

			_, err := svc.GetMinedPatterns(context.Background(), uuid.New(), tt.limit, 0)
			require.NoError(t, err)

			var page *specification.Pagination
			for _, s := range uow.patterns.lastSpecs {
				if p, ok := s.(specification.Pagination); ok {
					page = &p
				}
			}
			require.NotNil(t, page)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}
