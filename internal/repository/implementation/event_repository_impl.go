package implementation

import (
	"context"
	"time"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/mapper"
	"activity-insights-be/internal/model"
	"activity-insights-be/internal/repository/contract"
	"activity-insights-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *EventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	var models []*model.Event
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Event{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EventRepositoryImpl) DistinctUserIdsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("occurred_at >= ?", since).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
