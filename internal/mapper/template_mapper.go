package mapper

import (
	"encoding/json"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.Template) *entity.Template {
	if t == nil {
		return nil
	}

	var steps []entity.TemplateStep
	_ = json.Unmarshal(t.Steps, &steps)

	return &entity.Template{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Steps:       steps,
		Criteria: entity.MatchCriteria{
			MinSupport:    t.MinSupport,
			MinConfidence: t.MinConfidence,
			FuzzyMatch:    t.FuzzyMatch,
		},
		ConfidenceThreshold: t.ConfidenceThreshold,
		Enabled:             t.Enabled,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func (m *TemplateMapper) ToModel(t *entity.Template) *model.Template {
	if t == nil {
		return nil
	}

	steps, _ := json.Marshal(t.Steps)

	return &model.Template{
		Id:                  t.Id,
		Name:                t.Name,
		Description:         t.Description,
		Category:            t.Category,
		Steps:               steps,
		MinSupport:          t.Criteria.MinSupport,
		MinConfidence:       t.Criteria.MinConfidence,
		FuzzyMatch:          t.Criteria.FuzzyMatch,
		ConfidenceThreshold: t.ConfidenceThreshold,
		Enabled:             t.Enabled,
	}
}

func (m *TemplateMapper) ToEntities(templates []*model.Template) []*entity.Template {
	entities := make([]*entity.Template, len(templates))
	for i, t := range templates {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
