package dto

import (
	"strconv"
	"time"

	"emcee.events/emcee/common"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
)

type AdvanceFlowRequest struct {
	Target      string            `json:"target" binding:"required"`
	DisplayName *string           `json:"display_name,omitempty" binding:"omitempty,min=1,max=255"`
	Email       *string           `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Answers     map[string]string `json:"answers,omitempty"`
	Consent     bool              `json:"consent,omitempty"`
}

type CompleteExperienceRequest struct {
	Capture *CaptureUpload `json:"capture,omitempty"`
}

type CaptureUpload struct {
	MediaURL  string `json:"media_url" binding:"required,url,max=2048"`
	MediaType string `json:"media_type" binding:"required"`
}

// GuestResponse is the guest document as both the guest client and the
// admin guest listing see it.
type GuestResponse struct {
	ID                   int64             `json:"id,string"`
	ProjectID            int64             `json:"project_id,string"`
	EventID              int64             `json:"event_id,string"`
	DisplayName          *string           `json:"display_name,omitempty"`
	Initials             string            `json:"initials,omitempty"`
	Email                *string           `json:"email,omitempty"`
	PregateAnswers       map[string]string `json:"pregate_answers,omitempty"`
	FlowState            string            `json:"flow_state"`
	CompletedExperiences []string          `json:"completed_experiences"`
	ConsentedAt          *time.Time        `json:"consented_at,omitempty"`
	LastSeenAt           time.Time         `json:"last_seen_at"`
	CreatedAt            time.Time         `json:"created_at"`
}

func ToGuestResponse(g *model.Guest) *GuestResponse {
	completed := make([]string, 0, len(g.CompletedExperiences))
	for _, experienceID := range g.CompletedExperiences {
		completed = append(completed, strconv.FormatInt(experienceID, 10))
	}
	initials := ""
	if g.DisplayName != nil {
		initials = common.Initials(*g.DisplayName)
	}
	return &GuestResponse{
		ID:                   g.ID,
		ProjectID:            g.ProjectID,
		EventID:              g.EventID,
		DisplayName:          g.DisplayName,
		Initials:             initials,
		Email:                g.Email,
		PregateAnswers:       g.PregateAnswers,
		FlowState:            string(g.FlowState),
		CompletedExperiences: completed,
		ConsentedAt:          g.ConsentedAt,
		LastSeenAt:           g.LastSeenAt,
		CreatedAt:            g.CreatedAt,
	}
}

func ToGuestResponses(guests []model.Guest) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for i := range guests {
		out = append(out, *ToGuestResponse(&guests[i]))
	}
	return out
}

type FlowCompositionResponse struct {
	EventID   int64                   `json:"event_id,string"`
	EventName string                  `json:"event_name"`
	JoinURL   string                  `json:"join_url"`
	Config    map[string]any          `json:"config"`
	Rotation  []RotationEntryResponse `json:"rotation"`
}

type RotationEntryResponse struct {
	ID     int64          `json:"id,string"`
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Config map[string]any `json:"config"`
}

func ToFlowCompositionResponse(fc *service.FlowComposition) *FlowCompositionResponse {
	if fc == nil {
		return nil
	}
	rotation := make([]RotationEntryResponse, 0, len(fc.Rotation))
	for _, entry := range fc.Rotation {
		rotation = append(rotation, RotationEntryResponse{
			ID:     entry.ID,
			Name:   entry.Name,
			Kind:   string(entry.Kind),
			Config: entry.Config,
		})
	}
	return &FlowCompositionResponse{
		EventID:   fc.EventID,
		EventName: fc.EventName,
		JoinURL:   fc.JoinURL,
		Config:    fc.Config,
		Rotation:  rotation,
	}
}

type GuestSessionResponse struct {
	Token       string                   `json:"token"`
	Guest       *GuestResponse           `json:"guest"`
	Composition *FlowCompositionResponse `json:"composition"`
}

type GuestFlowResponse struct {
	Guest       *GuestResponse           `json:"guest"`
	Composition *FlowCompositionResponse `json:"composition"`
}

type CompletionResponse struct {
	Guest          *GuestResponse   `json:"guest"`
	Capture        *CaptureResponse `json:"capture,omitempty"`
	TransformJobID *int64           `json:"transform_job_id,string,omitempty"`
}
