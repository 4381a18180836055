package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type CreatePresetRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type PresetResponse struct {
	ID               int64          `json:"id,string"`
	WorkspaceID      int64          `json:"workspace_id,string"`
	Name             string         `json:"name"`
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

func ToPresetResponse(p *model.AIPreset) *PresetResponse {
	return &PresetResponse{
		ID:               p.ID,
		WorkspaceID:      p.WorkspaceID,
		Name:             p.Name,
		Status:           string(p.Status),
		DraftConfig:      p.DraftConfig,
		PublishedConfig:  p.PublishedConfig,
		DraftVersion:     p.DraftVersion,
		PublishedVersion: p.PublishedVersion,
		PublishedAt:      p.PublishedAt,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToPresetResponses(presets []model.AIPreset) []PresetResponse {
	out := make([]PresetResponse, 0, len(presets))
	for i := range presets {
		out = append(out, *ToPresetResponse(&presets[i]))
	}
	return out
}
