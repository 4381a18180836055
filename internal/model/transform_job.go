package model

import "time"

type TransformJobStatus string

const (
	TransformJobStatusQueued    TransformJobStatus = "queued"
	TransformJobStatusRunning   TransformJobStatus = "running"
	TransformJobStatusSucceeded TransformJobStatus = "succeeded"
	TransformJobStatusFailed    TransformJobStatus = "failed"
)

// TransformResult is what the model produces for a capture: share-page copy
// plus tags for search.
type TransformResult struct {
	Caption    string   `json:"caption" jsonschema_description:"One-sentence caption for the share page"`
	AltText    string   `json:"alt_text" jsonschema_description:"Accessibility description of the media"`
	Tags       []string `json:"tags" jsonschema_description:"Three to six short lowercase tags"`
	StyleNotes string   `json:"style_notes" jsonschema_description:"How the preset style was applied"`
}

// TransformJob tracks one AI transform through the queue. The API enqueues
// it; the worker claims it (queued -> running) and records the outcome.
type TransformJob struct {
	ID           int64              `json:"id"`
	WorkspaceID  int64              `json:"workspace_id"`
	ProjectID    int64              `json:"project_id"`
	CaptureID    int64              `json:"capture_id"`
	PresetID     int64              `json:"preset_id"`
	Status       TransformJobStatus `json:"status"`
	Attempt      int                `json:"attempt"`
	Result       *TransformResult   `json:"result,omitempty"`
	ErrorMessage *string            `json:"error_message,omitempty"`
	StartedAt    *time.Time         `json:"started_at,omitempty"`
	FinishedAt   *time.Time         `json:"finished_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Terminal reports whether the job can no longer change state.
func (j *TransformJob) Terminal() bool {
	return j.Status == TransformJobStatusSucceeded || j.Status == TransformJobStatusFailed
}
