package model

import "time"

// Event is a scheduled occasion guests join via a short code. Its config is
// versioned like a project's; the published copy drives the live guest flow.
// The config keys the backend interprets: "experience_rotation" (ordered
// experience IDs as strings), "pregate_enabled", "pregate_fields".
type Event struct {
	ID               int64          `json:"id"`
	WorkspaceID      int64          `json:"workspace_id"`
	ProjectID        int64          `json:"project_id"`
	Name             string         `json:"name"`
	ShortCode        string         `json:"short_code"`
	Status           ContentStatus  `json:"status"`
	StartsAt         *time.Time     `json:"starts_at,omitempty"`
	EndsAt           *time.Time     `json:"ends_at,omitempty"`
	Venue            *string        `json:"venue,omitempty"`
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

func (e *Event) IsPublished() bool {
	return len(e.PublishedConfig) > 0
}

func (e *Event) HasDraftContent() bool {
	return len(e.DraftConfig) > 0
}

// IsLive reports whether the event accepts guests at t. Events without a
// schedule are live whenever they are published.
func (e *Event) IsLive(t time.Time) bool {
	if !e.IsPublished() || e.Status != ContentStatusActive {
		return false
	}
	if e.StartsAt != nil && t.Before(*e.StartsAt) {
		return false
	}
	if e.EndsAt != nil && t.After(*e.EndsAt) {
		return false
	}
	return true
}

// DefaultEventConfig is the draft config a fresh event starts with. The
// welcome heading defaults to the event name.
func DefaultEventConfig(name string) map[string]any {
	return map[string]any{
		"welcome_heading":     name,
		"welcome_body":        "",
		"pregate_enabled":     false,
		"pregate_fields":      []any{},
		"experience_rotation": []any{},
		"share": map[string]any{
			"allow_download": true,
			"allow_email":    true,
			"allow_qr":       true,
		},
	}
}
