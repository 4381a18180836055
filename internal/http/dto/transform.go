package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type EnqueueTransformRequest struct {
	CaptureID int64 `json:"capture_id,string" binding:"required"`
	PresetID  int64 `json:"preset_id,string" binding:"required"`
}

type TransformJobResponse struct {
	ID           int64                  `json:"id,string"`
	WorkspaceID  int64                  `json:"workspace_id,string"`
	ProjectID    int64                  `json:"project_id,string"`
	CaptureID    int64                  `json:"capture_id,string"`
	PresetID     int64                  `json:"preset_id,string"`
	Status       string                 `json:"status"`
	Attempt      int                    `json:"attempt"`
	Result       *model.TransformResult `json:"result,omitempty"`
	ErrorMessage *string                `json:"error_message,omitempty"`
	StartedAt    *time.Time             `json:"started_at,omitempty"`
	FinishedAt   *time.Time             `json:"finished_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func ToTransformJobResponse(j *model.TransformJob) *TransformJobResponse {
	return &TransformJobResponse{
		ID:           j.ID,
		WorkspaceID:  j.WorkspaceID,
		ProjectID:    j.ProjectID,
		CaptureID:    j.CaptureID,
		PresetID:     j.PresetID,
		Status:       string(j.Status),
		Attempt:      j.Attempt,
		Result:       j.Result,
		ErrorMessage: j.ErrorMessage,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func ToTransformJobResponses(jobs []model.TransformJob) []TransformJobResponse {
	out := make([]TransformJobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *ToTransformJobResponse(&jobs[i]))
	}
	return out
}
