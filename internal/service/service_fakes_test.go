package service

import (
	"context"
	"time"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/repository/contract"
	"activity-insights-be/internal/repository/specification"
	"activity-insights-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// ownerOf digs the owning user out of the specification list, so the fake
// can serve per-user fixtures the way the real repository filters rows.
func ownerOf(specs []specification.Specification) uuid.UUID {
	for _, s := range specs {
		if owned, ok := s.(specification.OwnedByUser); ok {
			return owned.UserID
		}
	}
	return uuid.Nil
}

type fakeEventRepository struct {
	eventsByUser map[uuid.UUID][]*entity.Event
	errByUser    map[uuid.UUID]error

	userIds []uuid.UUID
	listErr error
}

func (f *fakeEventRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	userId := ownerOf(specs)
	if err, ok := f.errByUser[userId]; ok {
		return nil, err
	}
	return f.eventsByUser[userId], nil
}

func (f *fakeEventRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.eventsByUser[ownerOf(specs)])), nil
}

func (f *fakeEventRepository) DistinctUserIdsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.userIds, nil
}

type fakePatternRepository struct {
	upserts   []*entity.Pattern
	upsertErr error
	failFirst bool

	patterns  []*entity.Pattern
	lastSpecs []specification.Specification
	calls     int
}

func (f *fakePatternRepository) Upsert(ctx context.Context, pattern *entity.Pattern) error {
	f.calls++
	if f.failFirst && f.calls == 1 {
		return f.upsertErr
	}
	if !f.failFirst && f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, pattern)
	return nil
}

func (f *fakePatternRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pattern, error) {
	f.lastSpecs = specs
	return f.patterns, nil
}

func (f *fakePatternRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.patterns)), nil
}

type fakeTemplateRepository struct {
	templates []*entity.Template
	err       error
	findCalls int
}

func (f *fakeTemplateRepository) Create(ctx context.Context, template *entity.Template) error {
	f.templates = append(f.templates, template)
	return nil
}

func (f *fakeTemplateRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error) {
	if len(f.templates) == 0 {
		return nil, nil
	}
	return f.templates[0], f.err
}

func (f *fakeTemplateRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.templates, nil
}

func (f *fakeTemplateRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.templates)), nil
}

type fakeUserRepository struct {
	user *entity.User
	err  error
}

func (f *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if f.user == nil {
		return 0, nil
	}
	return 1, nil
}

type fakeUnitOfWork struct {
	events    *fakeEventRepository
	patterns  *fakePatternRepository
	templates *fakeTemplateRepository
	users     *fakeUserRepository
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) EventRepository() contract.EventRepository       { return f.events }
func (f *fakeUnitOfWork) PatternRepository() contract.PatternRepository   { return f.patterns }
func (f *fakeUnitOfWork) TemplateRepository() contract.TemplateRepository { return f.templates }
func (f *fakeUnitOfWork) UserRepository() contract.UserRepository         { return f.users }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeRepositoryFactory, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{
		events:    &fakeEventRepository{eventsByUser: map[uuid.UUID][]*entity.Event{}, errByUser: map[uuid.UUID]error{}},
		patterns:  &fakePatternRepository{},
		templates: &fakeTemplateRepository{},
		users:     &fakeUserRepository{},
	}
	return &fakeRepositoryFactory{uow: uow}, uow
}

func recentEvent(userId uuid.UUID, kind entity.EventKind, url, text string, minutesAgo int) *entity.Event {
	return &entity.Event{
		Id:         uuid.New(),
		UserId:     userId,
		Kind:       kind,
		URL:        url,
		Text:       text,
		OccurredAt: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}
