package service

import (
	"context"
	"errors"
	"testing"

	"activity-insights-be/internal/config"
	"activity-insights-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miningTestConfig() config.MiningConfig {
	return config.MiningConfig{
		WindowDays:       7,
		EventCap:         10000,
		SupportThreshold: 3,
		MinPatternLen:    3,
		MaxPatternLen:    5,
	}
}

// repeatedVisits builds three same-domain click runs separated by off-domain
// noise too short to form runs of its own. The three-step shop sequence
// therefore recurs once per run.
func repeatedVisits(userId uuid.UUID) []*entity.Event {
	var events []*entity.Event
	minutesAgo := 120
	for visit := 0; visit < 3; visit++ {
		for _, path := range []string{"/list", "/item", "/cart"} {
			events = append(events,
				recentEvent(userId, entity.EventKindClick, "https://shop.com"+path, "", minutesAgo))
			minutesAgo--
		}
		if visit < 2 {
			events = append(events,
				recentEvent(userId, entity.EventKindNavigation, "https://mail.com/inbox", "", minutesAgo))
			minutesAgo--
		}
	}
	return events
}

func TestMinePatternsForUserTooSparse(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()
	uow.events.eventsByUser[userId] = []*entity.Event{
		recentEvent(userId, entity.EventKindClick, "https://shop.com/a", "", 10),
		recentEvent(userId, entity.EventKindClick, "https://shop.com/b", "", 9),
	}

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	stored, err := svc.MinePatternsForUser(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, 0, stored)
	assert.Empty(t, uow.patterns.upserts)
}

func TestMinePatternsForUserFetchError(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()
	uow.events.errByUser[userId] = errors.New("connection refused")

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	_, err := svc.MinePatternsForUser(context.Background(), userId)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEventFetch)
}

func TestMinePatternsForUserStoresRecurringSequence(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()
	uow.events.eventsByUser[userId] = repeatedVisits(userId)

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	stored, err := svc.MinePatternsForUser(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	require.Len(t, uow.patterns.upserts, 1)

	p := uow.patterns.upserts[0]
	assert.Equal(t, userId, p.UserId)
	assert.Equal(t, []string{"click:shop.com", "click:shop.com", "click:shop.com"}, p.Sequence)
	assert.Equal(t, 3, p.Support)
	// Support 3 across 3 runs.
	assert.Equal(t, 1.0, p.Confidence)
	assert.False(t, p.FirstSeen.IsZero())
	assert.True(t, p.LastSeen.After(p.FirstSeen))
}

func TestMinePatternsForUserConfidenceExceedsOne(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()
	// Seven same-domain clicks make a single run, so the length-3 window
	// recurs 5 times within it: confidence 5/1.
	var events []*entity.Event
	for i := 0; i < 7; i++ {
		events = append(events,
			recentEvent(userId, entity.EventKindClick, "https://shop.com/p", "", 60-i))
	}
	uow.events.eventsByUser[userId] = events

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	stored, err := svc.MinePatternsForUser(context.Background(), userId)

	require.NoError(t, err)
	// Lengths 3, 4 and 5 all clear the support threshold.
	assert.Equal(t, 3, stored)
	require.Len(t, uow.patterns.upserts, 3)
	assert.Equal(t, 5, uow.patterns.upserts[0].Support)
	assert.Equal(t, 5.0, uow.patterns.upserts[0].Confidence)
}

func TestMinePatternsForUserUpsertFailureSkipsPattern(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()
	var events []*entity.Event
	for i := 0; i < 7; i++ {
		events = append(events,
			recentEvent(userId, entity.EventKindClick, "https://shop.com/p", "", 60-i))
	}
	uow.events.eventsByUser[userId] = events
	uow.patterns.failFirst = true
	uow.patterns.upsertErr = errors.New("deadlock detected")

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	stored, err := svc.MinePatternsForUser(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, 2, stored)
	assert.Len(t, uow.patterns.upserts, 2)
}

func TestMineAllUsersContinuesPastFailures(t *testing.T) {
	factory, uow := newFakeFactory()
	healthy := uuid.New()
	broken := uuid.New()
	uow.events.userIds = []uuid.UUID{healthy, broken}
	uow.events.eventsByUser[healthy] = repeatedVisits(healthy)
	uow.events.errByUser[broken] = errors.New("connection refused")

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	summary, err := svc.MineAllUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.UsersProcessed)
	assert.Equal(t, 1, summary.UsersFailed)
	assert.Equal(t, 1, summary.PatternsStored)
}

func TestMineAllUsersListError(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.events.listErr = errors.New("connection refused")

	svc := NewMiningService(factory, nopLogger{}, nil, miningTestConfig())
	summary, err := svc.MineAllUsers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEventFetch)
	assert.Nil(t, summary)
}
