package model

import "time"

type IntegrationStatus string

const (
	IntegrationStatusConnected IntegrationStatus = "connected"
	IntegrationStatusRevoked   IntegrationStatus = "revoked"
)

// StorageIntegration links a workspace to the external storage provider that
// receives guest captures. Provider tokens are sealed (AES-GCM) before they
// are written; the plaintext never reaches the database or the API.
type StorageIntegration struct {
	ID                 int64             `json:"id"`
	WorkspaceID        int64             `json:"workspace_id"`
	Provider           string            `json:"provider"`
	Status             IntegrationStatus `json:"status"`
	AccountEmail       *string           `json:"account_email,omitempty"`
	SealedAccessToken  string            `json:"sealed_access_token"`
	SealedRefreshToken *string           `json:"sealed_refresh_token,omitempty"`
	TokenExpiresAt     *time.Time        `json:"token_expires_at,omitempty"`
	ConnectedBy        int64             `json:"connected_by"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
