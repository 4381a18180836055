package model

import "time"

// AIPreset is a reusable transform style an experience can reference.
// Versioned like a project; the worker always reads the published config.
// Config keys the worker interprets: "prompt_template", "style_tags",
// "strength", "negative_prompt".
type AIPreset struct {
	ID               int64          `json:"id"`
	WorkspaceID      int64          `json:"workspace_id"`
	Name             string         `json:"name"`
	Status           ContentStatus  `json:"status"`
	DraftConfig      map[string]any `json:"draft_config"`
	PublishedConfig  map[string]any `json:"published_config,omitempty"`
	DraftVersion     int64          `json:"draft_version"`
	PublishedVersion int64          `json:"published_version"`
	PublishedAt      *time.Time     `json:"published_at,omitempty"`
	CreatedBy        int64          `json:"created_by"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        *time.Time     `json:"deleted_at,omitempty"`
}

func (p *AIPreset) IsPublished() bool {
	return len(p.PublishedConfig) > 0
}

func (p *AIPreset) HasDraftContent() bool {
	return len(p.DraftConfig) > 0
}

// DefaultPresetConfig is the draft config a fresh AI preset starts with.
func DefaultPresetConfig() map[string]any {
	return map[string]any{
		"prompt_template": "",
		"style_tags":      []any{},
		"strength":        0.75,
	}
}
