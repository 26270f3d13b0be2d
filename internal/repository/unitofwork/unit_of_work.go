package unitofwork

import (
	"context"

	"activity-insights-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EventRepository() contract.EventRepository
	PatternRepository() contract.PatternRepository
	TemplateRepository() contract.TemplateRepository
	UserRepository() contract.UserRepository
}
