package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Role  string `json:"role" binding:"required"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type MemberResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	UserID      int64     `json:"user_id,string"`
	Role        string    `json:"role"`
	AddedBy     *int64    `json:"added_by,string,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToMemberResponse(m *model.WorkspaceMember) *MemberResponse {
	return &MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		AddedBy:     m.AddedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToMemberResponses(members []model.WorkspaceMember) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *ToMemberResponse(&members[i]))
	}
	return out
}
