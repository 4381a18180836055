package model

import "time"

// Capture is the artifact a guest produced in one experience run. ShareCode
// is the public handle on the share page; TransformJobID links the AI
// transform when the experience requested one.
type Capture struct {
	ID             int64      `json:"id"`
	ProjectID      int64      `json:"project_id"`
	EventID        int64      `json:"event_id"`
	GuestID        int64      `json:"guest_id"`
	ExperienceID   int64      `json:"experience_id"`
	MediaURL       string     `json:"media_url"`
	MediaType      string     `json:"media_type"` // "image", "video", "gif"
	ShareCode      string     `json:"share_code"`
	TransformJobID *int64     `json:"transform_job_id,omitempty"`
	SharedAt       *time.Time `json:"shared_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
