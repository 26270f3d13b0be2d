package implementation

import (
	"context"
	"errors"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/mapper"
	"activity-insights-be/internal/model"
	"activity-insights-be/internal/repository/contract"
	"activity-insights-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) contract.TemplateRepository {
	return &TemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateMapper(),
	}
}

func (r *TemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, template *entity.Template) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error) {
	var m model.Template
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
	var models []*model.Template
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Template{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
