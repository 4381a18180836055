package dto

import (
	"time"

	"emcee.events/emcee/internal/model"
)

// IntegrationResponse describes the workspace's storage connection. The
// sealed provider tokens never appear here.
type IntegrationResponse struct {
	ID             int64      `json:"id,string"`
	WorkspaceID    int64      `json:"workspace_id,string"`
	Provider       string     `json:"provider"`
	Status         string     `json:"status"`
	AccountEmail   *string    `json:"account_email,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	ConnectedBy    int64      `json:"connected_by,string"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToIntegrationResponse(i *model.StorageIntegration) *IntegrationResponse {
	return &IntegrationResponse{
		ID:             i.ID,
		WorkspaceID:    i.WorkspaceID,
		Provider:       i.Provider,
		Status:         string(i.Status),
		AccountEmail:   i.AccountEmail,
		TokenExpiresAt: i.TokenExpiresAt,
		ConnectedBy:    i.ConnectedBy,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

type ConnectStorageResponse struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}
