package contract

import (
	"context"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/repository/specification"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
