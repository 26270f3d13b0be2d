package mapper

import (
	"encoding/json"

	"activity-insights-be/internal/entity"
	"activity-insights-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(e.Metadata) > 0 {
		// Malformed metadata degrades to nil rather than failing the read.
		_ = json.Unmarshal(e.Metadata, &metadata)
	}

	return &entity.Event{
		Id:         e.Id,
		UserId:     e.UserId,
		Kind:       entity.EventKind(e.Kind),
		URL:        e.URL,
		Title:      e.Title,
		Text:       e.Text,
		Locator:    e.Locator,
		Metadata:   metadata,
		OccurredAt: e.OccurredAt,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}

	var metadata []byte
	if e.Metadata != nil {
		metadata, _ = json.Marshal(e.Metadata)
	}

	return &model.Event{
		Id:         e.Id,
		UserId:     e.UserId,
		Kind:       string(e.Kind),
		URL:        e.URL,
		Title:      e.Title,
		Text:       e.Text,
		Locator:    e.Locator,
		Metadata:   metadata,
		OccurredAt: e.OccurredAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
