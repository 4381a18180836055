package store

import (
	"context"
	"errors"
	"time"

	"emcee.events/emcee/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetBySlug(ctx context.Context, slug string) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) error // soft delete
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
}

// MemberStore defines the contract for workspace membership data access
type MemberStore interface {
	GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error)
	Create(ctx context.Context, member *model.WorkspaceMember) error
	UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.WorkspaceMember, error)
	Delete(ctx context.Context, workspaceID, userID int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
	CountByRole(ctx context.Context, workspaceID int64, role model.Role) (int64, error)
}

// ProjectStore defines the contract for project data access
type ProjectStore interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context, workspaceID int64) ([]model.Project, error)
	UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.Project, error)
	UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Project, error)
	Publish(ctx context.Context, workspaceID, id int64) (*model.Project, error)
	Delete(ctx context.Context, workspaceID, id int64) error // soft delete
}

// EventStore defines the contract for event data access
type EventStore interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*model.Event, error)
	Get(ctx context.Context, id int64) (*model.Event, error) // unscoped, for guest lookups
	GetByShortCode(ctx context.Context, shortCode string) (*model.Event, error)
	ShortCodeExists(ctx context.Context, shortCode string) (bool, error)
	Create(ctx context.Context, event *model.Event) error
	ListByProject(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error)
	UpdateMeta(ctx context.Context, workspaceID, id int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error)
	UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Event, error)
	Publish(ctx context.Context, workspaceID, id int64) (*model.Event, error)
	Delete(ctx context.Context, workspaceID, id int64) error // soft delete
}

// ExperienceStore defines the contract for experience data access
type ExperienceStore interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*model.Experience, error)
	GetManyByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]model.Experience, error)
	Create(ctx context.Context, experience *model.Experience) error
	ListByProject(ctx context.Context, workspaceID, projectID int64) ([]model.Experience, error)
	UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.Experience, error)
	UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Experience, error)
	Publish(ctx context.Context, workspaceID, id int64) (*model.Experience, error)
	Delete(ctx context.Context, workspaceID, id int64) error // soft delete
}

// PresetStore defines the contract for AI preset data access
type PresetStore interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error)
	Create(ctx context.Context, preset *model.AIPreset) error
	List(ctx context.Context, workspaceID int64) ([]model.AIPreset, error)
	UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.AIPreset, error)
	UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.AIPreset, error)
	Publish(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error)
	Delete(ctx context.Context, workspaceID, id int64) error // soft delete
}

// GuestStore defines the contract for guest data access
type GuestStore interface {
	GetByID(ctx context.Context, id int64) (*model.Guest, error)
	Create(ctx context.Context, guest *model.Guest) error
	UpdatePregate(ctx context.Context, id int64, displayName, email *string, answers map[string]string, consentedAt *time.Time) (*model.Guest, error)
	AdvanceFlow(ctx context.Context, id int64, from, to model.FlowState) (*model.Guest, error) // compare-and-set on flow_state
	CompleteExperience(ctx context.Context, id, experienceID int64) (*model.Guest, error)      // set union, idempotent
	ListByEvent(ctx context.Context, eventID int64) ([]model.Guest, error)
}

// CaptureStore defines the contract for capture data access
type CaptureStore interface {
	GetByID(ctx context.Context, id int64) (*model.Capture, error)
	GetByShareCode(ctx context.Context, shareCode string) (*model.Capture, error)
	Create(ctx context.Context, capture *model.Capture) error
	ListByEvent(ctx context.Context, eventID int64) ([]model.Capture, error)
	ListByGuest(ctx context.Context, guestID int64) ([]model.Capture, error)
	SetTransformJob(ctx context.Context, id, jobID int64) error
	MarkShared(ctx context.Context, id, guestID int64) (*model.Capture, error)
}

// IntegrationStore defines the contract for storage integration data access
type IntegrationStore interface {
	GetByWorkspace(ctx context.Context, workspaceID int64) (*model.StorageIntegration, error)
	Upsert(ctx context.Context, integration *model.StorageIntegration) error
	UpdateTokens(ctx context.Context, workspaceID int64, sealedAccess string, sealedRefresh *string, expiresAt *time.Time) error
	MarkRevoked(ctx context.Context, workspaceID int64) error
	Delete(ctx context.Context, workspaceID int64) error
}

// TransformJobStore defines the contract for transform job data access
type TransformJobStore interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*model.TransformJob, error)
	Create(ctx context.Context, job *model.TransformJob) error
	Claim(ctx context.Context, id int64) (*model.TransformJob, error) // refuses terminal jobs
	MarkSucceeded(ctx context.Context, id int64, result *model.TransformResult) error
	MarkFailed(ctx context.Context, id int64, errMsg string) error
	ListByWorkspace(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error)
}
