package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type CreateExperienceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Kind string `json:"kind" binding:"required"`
}

type ExperienceResponse struct {
	ID               int64          `json:"id,string"`
	WorkspaceID      int64          `json:"workspace_id,string"`
	ProjectID        int64          `json:"project_id,string"`
	Name             string         `json:"name"`
	Kind             string         `json:"kind"`
	Status           string         `json:"status"`
	DraftConfig      map[string]any `json:"draft_config"`
	PublishedConfig  map[string]any `json:"published_config,omitempty"`
	DraftVersion     int64          `json:"draft_version"`
	PublishedVersion int64          `json:"published_version"`
	PublishedAt      *time.Time     `json:"published_at,omitempty"`
	CreatedBy        int64          `json:"created_by,string"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func ToExperienceResponse(e *model.Experience) *ExperienceResponse {
	return &ExperienceResponse{
		ID:               e.ID,
		WorkspaceID:      e.WorkspaceID,
		ProjectID:        e.ProjectID,
		Name:             e.Name,
		Kind:             string(e.Kind),
		Status:           string(e.Status),
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

func ToExperienceResponses(experiences []model.Experience) []ExperienceResponse {
	out := make([]ExperienceResponse, 0, len(experiences))
	for i := range experiences {
		out = append(out, *ToExperienceResponse(&experiences[i]))
	}
	return out
}
