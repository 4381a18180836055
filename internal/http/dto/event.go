package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type CreateEventRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=255"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Venue    *string    `json:"venue,omitempty" binding:"omitempty,max=512"`
}

// UpdateEventRequest replaces the event's scheduling metadata. Config
// changes go through the draft patch endpoint instead.
type UpdateEventRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=255"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Venue    *string    `json:"venue,omitempty" binding:"omitempty,max=512"`
}

type EventResponse struct {
	ID               int64          `json:"id,string"`
	WorkspaceID      int64          `json:"workspace_id,string"`
	ProjectID        int64          `json:"project_id,string"`
	Name             string         `json:"name"`
	ShortCode        string         `json:"short_code"`
	Status           string         `json:"status"`
	StartsAt         *time.Time     `json:"starts_at,omitempty"`
	EndsAt           *time.Time     `json:"ends_at,omitempty"`
	Venue            *string        `json:"venue,omitempty"`
	DraftConfig      map[string]any `json:"draft_config"`
	PublishedConfig  map[string]any `json:"published_config,omitempty"`
	DraftVersion     int64          `json:"draft_version"`
	PublishedVersion int64          `json:"published_version"`
	PublishedAt      *time.Time     `json:"published_at,omitempty"`
	CreatedBy        int64          `json:"created_by,string"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func ToEventResponse(e *model.Event) *EventResponse {
	return &EventResponse{
		ID:               e.ID,
		WorkspaceID:      e.WorkspaceID,
		ProjectID:        e.ProjectID,
		Name:             e.Name,
		ShortCode:        e.ShortCode,
		Status:           string(e.Status),
		StartsAt:         e.StartsAt,
		EndsAt:           e.EndsAt,
		Venue:            e.Venue,
		DraftConfig:      e.DraftConfig,
		PublishedConfig:  e.PublishedConfig,
		DraftVersion:     e.DraftVersion,
		PublishedVersion: e.PublishedVersion,
		PublishedAt:      e.PublishedAt,
		CreatedBy:        e.CreatedBy,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToEventResponses(events []model.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *ToEventResponse(&events[i]))
	}
	return out
}
