package model

import "time"

// Project carries two copies of its config: the draft that editors mutate
// and the published copy that guests see. Publishing copies draft over
// published; the two never advance independently.
//
// Configs are free-form JSON documents (theme, locale, flow options). The
// backend only interprets the keys the config helpers know about; everything
// else passes through untouched.
type Project struct {
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

func (p *Project) IsPublished() bool {
	return len(p.PublishedConfig) > 0
}

// HasDraftContent reports whether there is anything to publish.
func (p *Project) HasDraftContent() bool {
	return len(p.DraftConfig) > 0
}

// DefaultProjectConfig is the draft config a fresh project starts with.
func DefaultProjectConfig() map[string]any {
	return map[string]any{
		"theme": map[string]any{
			"primary_color":   "#1a1a2e",
			"secondary_color": "#e94560",
		},
		"locale":          "en",
		"show_powered_by": true,
	}
}
