package contract

import (
	"context"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/repository/specification"
)

type PatternRepository interface {
	// Upsert inserts the pattern or, when (user, sequence) already exists,
	// overwrites support, confidence and last_seen with the fresher counts.
	Upsert(ctx context.Context, pattern *entity.Pattern) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pattern, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
