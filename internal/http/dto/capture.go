package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type CaptureResponse struct {
	ID             int64      `json:"id,string"`
	ProjectID      int64      `json:"project_id,string"`
	EventID        int64      `json:"event_id,string"`
	GuestID        int64      `json:"guest_id,string"`
	ExperienceID   int64      `json:"experience_id,string"`
	MediaURL       string     `json:"media_url"`
	MediaType      string     `json:"media_type"`
	ShareCode      string     `json:"share_code"`
	TransformJobID *int64     `json:"transform_job_id,string,omitempty"`
	SharedAt       *time.Time `json:"shared_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToCaptureResponse(c *model.Capture) *CaptureResponse {
	return &CaptureResponse{
		ID:             c.ID,
		ProjectID:      c.ProjectID,
		EventID:        c.EventID,
		GuestID:        c.GuestID,
		ExperienceID:   c.ExperienceID,
		MediaURL:       c.MediaURL,
		MediaType:      c.MediaType,
		ShareCode:      c.ShareCode,
		TransformJobID: c.TransformJobID,
		SharedAt:       c.SharedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ToCaptureResponses(captures []model.Capture) []CaptureResponse {
	out := make([]CaptureResponse, 0, len(captures))
	for i := range captures {
		out = append(out, *ToCaptureResponse(&captures[i]))
	}
	return out
}

// SharedCaptureResponse is the public share-page view. It carries no guest
// or event identifiers.
type SharedCaptureResponse struct {
	ShareCode string     `json:"share_code"`
	MediaURL  string     `json:"media_url"`
	MediaType string     `json:"media_type"`
	SharedAt  *time.Time `json:"shared_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToSharedCaptureResponse(c *model.Capture) *SharedCaptureResponse {
	return &SharedCaptureResponse{
		ShareCode: c.ShareCode,
		MediaURL:  c.MediaURL,
		MediaType: c.MediaType,
		SharedAt:  c.SharedAt,
		CreatedAt: c.CreatedAt,
	}
}

type ShareResponse struct {
	Capture  *CaptureResponse `json:"capture"`
	ShareURL string           `json:"share_url"`
}
