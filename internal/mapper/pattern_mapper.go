package mapper

import (
	"encoding/json"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/model"
)

type PatternMapper struct{}

func NewPatternMapper() *PatternMapper {
	return &PatternMapper{}
}

func (m *PatternMapper) ToEntity(p *model.Pattern) *entity.Pattern {
	if p == nil {
		return nil
	}

	var sequence []string
	_ = json.Unmarshal(p.Sequence, &sequence)

	return &entity.Pattern{
		Id:         p.Id,
		UserId:     p.UserId,
		Sequence:   sequence,
		Support:    p.Support,
		Confidence: p.Confidence,
		FirstSeen:  p.FirstSeen,
		LastSeen:   p.LastSeen,
	}
}

func (m *PatternMapper) ToModel(p *entity.Pattern) *model.Pattern {
	if p == nil {
		return nil
	}

	sequence, _ := json.Marshal(p.Sequence)

	return &model.Pattern{
		Id:          p.Id,
		UserId:      p.UserId,
		SequenceKey: p.SequenceKey(),
		Sequence:    sequence,
		Support:     p.Support,
		Confidence:  p.Confidence,
		FirstSeen:   p.FirstSeen,
		LastSeen:    p.LastSeen,
	}
}

func (m *PatternMapper) ToEntities(patterns []*model.Pattern) []*entity.Pattern {
	entities := make([]*entity.Pattern, len(patterns))
	for i, p := range patterns {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
