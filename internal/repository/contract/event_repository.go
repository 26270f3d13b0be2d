package contract

import (
	"context"
	"time"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EventRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DistinctUserIdsSince lists users with at least one event at or after
	// the given timestamp. Backs the batch mining driver.
	DistinctUserIdsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}
