package model

import "time"

type ExperienceKind string

const (
	ExperienceKindPhoto  ExperienceKind = "photo"
	ExperienceKindVideo  ExperienceKind = "video"
	ExperienceKindGIF    ExperienceKind = "gif"
	ExperienceKindSurvey ExperienceKind = "survey"
)

func (k ExperienceKind) Valid() bool {
	switch k {
	case ExperienceKindPhoto, ExperienceKindVideo, ExperienceKindGIF, ExperienceKindSurvey:
		return true
	}
	return false
}

// Experience is one station a guest can run at an event: a photo booth
// setup, a video message, a survey. Versioned like a project; kind is fixed
// at create. The config key the backend interprets: "preset_id" (AI preset
// ID as a string; absent disables the transform step).
type Experience struct {
	ID               int64          `json:"id"`
	WorkspaceID      int64          `json:"workspace_id"`
	ProjectID        int64          `json:"project_id"`
	Name             string         `json:"name"`
	Kind             ExperienceKind `json:"kind"`
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

func (e *Experience) IsPublished() bool {
	return len(e.PublishedConfig) > 0
}

func (e *Experience) HasDraftContent() bool {
	return len(e.DraftConfig) > 0
}

// DefaultExperienceConfig is the draft config a fresh experience starts
// with, varied by kind.
func DefaultExperienceConfig(kind ExperienceKind) map[string]any {
	config := map[string]any{
		"countdown_seconds": 3,
		"capture_count":     1,
	}
	if kind == ExperienceKindSurvey {
		config["questions"] = []any{}
	}
	if kind == ExperienceKindGIF {
		config["capture_count"] = 4
	}
	return config
}
