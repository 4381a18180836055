package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type CreateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2048"`
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2048"`
}

type WorkspaceResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   int64     `json:"created_by,string"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Slug:        ws.Slug,
		Description: ws.Description,
		Status:      string(ws.Status),
		CreatedBy:   ws.CreatedBy,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		out = append(out, *ToWorkspaceResponse(&workspaces[i]))
	}
	return out
}
