package contract

import (
	"context"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/repository/specification"
)

type UserRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
