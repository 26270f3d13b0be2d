package implementation

import (
	"context"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/mapper"
	"activity-insights-be/internal/model"
	"activity-insights-be/internal/repository/contract"
	"activity-insights-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PatternRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PatternMapper
}

func NewPatternRepository(db *gorm.DB) contract.PatternRepository {
	return &PatternRepositoryImpl{
		db:     db,
		mapper: mapper.NewPatternMapper(),
	}
}

func (r *PatternRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PatternRepositoryImpl) Upsert(ctx context.Context, pattern *entity.Pattern) error {
	m := r.mapper.ToModel(pattern)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "sequence_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"support", "confidence", "last_seen", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*pattern = *r.mapper.ToEntity(m)
	return nil
}

func (r *PatternRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pattern, error) {
	var models []*model.Pattern
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PatternRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Pattern{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
