package service_test

import (
	"context"
	"time"

	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/queue"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/service"
)

type mockUserStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*model.User, error)
	upsertByWorkOSIDFn func(ctx context.Context, user *model.User) error
	getByEmailCalls    int
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.getByEmailCalls++
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if m.upsertByWorkOSIDFn != nil {
		return m.upsertByWorkOSIDFn(ctx, user)
	}
	return nil
}

type mockWorkspaceStore struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.Workspace, error)
	getBySlugFn  func(ctx context.Context, slug string) (*model.Workspace, error)
	createFn     func(ctx context.Context, ws *model.Workspace) error
	updateFn     func(ctx context.Context, ws *model.Workspace) error
	deleteFn     func(ctx context.Context, id int64) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.Workspace, error)

	getBySlugCalls int
	createCalls    int
	deleteCalls    int
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) GetBySlug(ctx context.Context, slug string) (*model.Workspace, error) {
	m.getBySlugCalls++
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockWorkspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []model.Workspace{}, nil
}

type mockMemberStore struct {
	getByWorkspaceAndUserFn func(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error)
	createFn                func(ctx context.Context, member *model.WorkspaceMember) error
	updateRoleFn            func(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.WorkspaceMember, error)
	deleteFn                func(ctx context.Context, workspaceID, userID int64) error
	listByWorkspaceFn       func(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
	countByRoleFn           func(ctx context.Context, workspaceID int64, role model.Role) (int64, error)

	createCalls      int
	deleteCalls      int
	countByRoleCalls int
}

func (m *mockMemberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error) {
	if m.getByWorkspaceAndUserFn != nil {
		return m.getByWorkspaceAndUserFn(ctx, workspaceID, userID)
	}
	return nil, nil
}

func (m *mockMemberStore) Create(ctx context.Context, member *model.WorkspaceMember) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, member)
	}
	return nil
}

func (m *mockMemberStore) UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.WorkspaceMember, error) {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, workspaceID, userID, role)
	}
	return nil, nil
}

func (m *mockMemberStore) Delete(ctx context.Context, workspaceID, userID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, workspaceID, userID)
	}
	return nil
}

func (m *mockMemberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return []model.WorkspaceMember{}, nil
}

func (m *mockMemberStore) CountByRole(ctx context.Context, workspaceID int64, role model.Role) (int64, error) {
	m.countByRoleCalls++
	if m.countByRoleFn != nil {
		return m.countByRoleFn(ctx, workspaceID, role)
	}
	return 0, nil
}

type mockProjectStore struct {
	getByIDFn     func(ctx context.Context, workspaceID, id int64) (*model.Project, error)
	createFn      func(ctx context.Context, project *model.Project) error
	listFn        func(ctx context.Context, workspaceID int64) ([]model.Project, error)
	updateNameFn  func(ctx context.Context, workspaceID, id int64, name string) (*model.Project, error)
	updateDraftFn func(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Project, error)
	publishFn     func(ctx context.Context, workspaceID, id int64) (*model.Project, error)
	deleteFn      func(ctx context.Context, workspaceID, id int64) error

	createCalls  int
	publishCalls int
}

func (m *mockProjectStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockProjectStore) Create(ctx context.Context, project *model.Project) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) List(ctx context.Context, workspaceID int64) ([]model.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return []model.Project{}, nil
}

func (m *mockProjectStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.Project, error) {
	if m.updateNameFn != nil {
		return m.updateNameFn(ctx, workspaceID, id, name)
	}
	return nil, nil
}

func (m *mockProjectStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Project, error) {
	if m.updateDraftFn != nil {
		return m.updateDraftFn(ctx, workspaceID, id, patch)
	}
	return nil, nil
}

func (m *mockProjectStore) Publish(ctx context.Context, workspaceID, id int64) (*model.Project, error) {
	m.publishCalls++
	if m.publishFn != nil {
		return m.publishFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockProjectStore) Delete(ctx context.Context, workspaceID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, workspaceID, id)
	}
	return nil
}

type mockEventStore struct {
	getByIDFn         func(ctx context.Context, workspaceID, id int64) (*model.Event, error)
	getFn             func(ctx context.Context, id int64) (*model.Event, error)
	getByShortCodeFn  func(ctx context.Context, shortCode string) (*model.Event, error)
	shortCodeExistsFn func(ctx context.Context, shortCode string) (bool, error)
	createFn          func(ctx context.Context, event *model.Event) error
	listByProjectFn   func(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error)
	updateMetaFn      func(ctx context.Context, workspaceID, id int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error)
	updateDraftFn     func(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Event, error)
	publishFn         func(ctx context.Context, workspaceID, id int64) (*model.Event, error)
	deleteFn          func(ctx context.Context, workspaceID, id int64) error

	shortCodeExistsCalls int
	createCalls          int
	publishCalls         int
}

func (m *mockEventStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.Event, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockEventStore) Get(ctx context.Context, id int64) (*model.Event, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEventStore) GetByShortCode(ctx context.Context, shortCode string) (*model.Event, error) {
	if m.getByShortCodeFn != nil {
		return m.getByShortCodeFn(ctx, shortCode)
	}
	return nil, nil
}

func (m *mockEventStore) ShortCodeExists(ctx context.Context, shortCode string) (bool, error) {
	m.shortCodeExistsCalls++
	if m.shortCodeExistsFn != nil {
		return m.shortCodeExistsFn(ctx, shortCode)
	}
	return false, nil
}

func (m *mockEventStore) Create(ctx context.Context, event *model.Event) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return nil
}

func (m *mockEventStore) ListByProject(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error) {
	if m.listByProjectFn != nil {
		return m.listByProjectFn(ctx, workspaceID, projectID)
	}
	return []model.Event{}, nil
}

func (m *mockEventStore) UpdateMeta(ctx context.Context, workspaceID, id int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error) {
	if m.updateMetaFn != nil {
		return m.updateMetaFn(ctx, workspaceID, id, name, startsAt, endsAt, venue)
	}
	return nil, nil
}

func (m *mockEventStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Event, error) {
	if m.updateDraftFn != nil {
		return m.updateDraftFn(ctx, workspaceID, id, patch)
	}
	return nil, nil
}

func (m *mockEventStore) Publish(ctx context.Context, workspaceID, id int64) (*model.Event, error) {
	m.publishCalls++
	if m.publishFn != nil {
		return m.publishFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockEventStore) Delete(ctx context.Context, workspaceID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, workspaceID, id)
	}
	return nil
}

type mockExperienceStore struct {
	getByIDFn       func(ctx context.Context, workspaceID, id int64) (*model.Experience, error)
	getManyByIDsFn  func(ctx context.Context, workspaceID int64, ids []int64) ([]model.Experience, error)
	createFn        func(ctx context.Context, experience *model.Experience) error
	listByProjectFn func(ctx context.Context, workspaceID, projectID int64) ([]model.Experience, error)
	publishFn       func(ctx context.Context, workspaceID, id int64) (*model.Experience, error)

	createCalls  int
	publishCalls int
}

func (m *mockExperienceStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.Experience, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockExperienceStore) GetManyByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]model.Experience, error) {
	if m.getManyByIDsFn != nil {
		return m.getManyByIDsFn(ctx, workspaceID, ids)
	}
	return []model.Experience{}, nil
}

func (m *mockExperienceStore) Create(ctx context.Context, experience *model.Experience) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, experience)
	}
	return nil
}

func (m *mockExperienceStore) ListByProject(ctx context.Context, workspaceID, projectID int64) ([]model.Experience, error) {
	if m.listByProjectFn != nil {
		return m.listByProjectFn(ctx, workspaceID, projectID)
	}
	return []model.Experience{}, nil
}

func (m *mockExperienceStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.Experience, error) {
	return nil, nil
}

func (m *mockExperienceStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Experience, error) {
	return nil, nil
}

func (m *mockExperienceStore) Publish(ctx context.Context, workspaceID, id int64) (*model.Experience, error) {
	m.publishCalls++
	if m.publishFn != nil {
		return m.publishFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockExperienceStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return nil
}

type mockPresetStore struct {
	getByIDFn func(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error)
	listFn    func(ctx context.Context, workspaceID int64) ([]model.AIPreset, error)

	getByIDCalls int
}

func (m *mockPresetStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error) {
	m.getByIDCalls++
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockPresetStore) Create(ctx context.Context, preset *model.AIPreset) error {
	return nil
}

func (m *mockPresetStore) List(ctx context.Context, workspaceID int64) ([]model.AIPreset, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return []model.AIPreset{}, nil
}

func (m *mockPresetStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.AIPreset, error) {
	return nil, nil
}

func (m *mockPresetStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.AIPreset, error) {
	return nil, nil
}

func (m *mockPresetStore) Publish(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error) {
	return nil, nil
}

func (m *mockPresetStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return nil
}

type mockGuestStore struct {
	getByIDFn            func(ctx context.Context, id int64) (*model.Guest, error)
	createFn             func(ctx context.Context, guest *model.Guest) error
	updatePregateFn      func(ctx context.Context, id int64, displayName, email *string, answers map[string]string, consentedAt *time.Time) (*model.Guest, error)
	advanceFlowFn        func(ctx context.Context, id int64, from, to model.FlowState) (*model.Guest, error)
	completeExperienceFn func(ctx context.Context, id, experienceID int64) (*model.Guest, error)
	listByEventFn        func(ctx context.Context, eventID int64) ([]model.Guest, error)

	createCalls        int
	updatePregateCalls int
}

func (m *mockGuestStore) GetByID(ctx context.Context, id int64) (*model.Guest, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockGuestStore) Create(ctx context.Context, guest *model.Guest) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, guest)
	}
	return nil
}

func (m *mockGuestStore) UpdatePregate(ctx context.Context, id int64, displayName, email *string, answers map[string]string, consentedAt *time.Time) (*model.Guest, error) {
	m.updatePregateCalls++
	if m.updatePregateFn != nil {
		return m.updatePregateFn(ctx, id, displayName, email, answers, consentedAt)
	}
	return nil, nil
}

func (m *mockGuestStore) AdvanceFlow(ctx context.Context, id int64, from, to model.FlowState) (*model.Guest, error) {
	if m.advanceFlowFn != nil {
		return m.advanceFlowFn(ctx, id, from, to)
	}
	return nil, nil
}

func (m *mockGuestStore) CompleteExperience(ctx context.Context, id, experienceID int64) (*model.Guest, error) {
	if m.completeExperienceFn != nil {
		return m.completeExperienceFn(ctx, id, experienceID)
	}
	return nil, nil
}

func (m *mockGuestStore) ListByEvent(ctx context.Context, eventID int64) ([]model.Guest, error) {
	if m.listByEventFn != nil {
		return m.listByEventFn(ctx, eventID)
	}
	return []model.Guest{}, nil
}

type mockCaptureStore struct {
	getByIDFn        func(ctx context.Context, id int64) (*model.Capture, error)
	getByShareCodeFn func(ctx context.Context, shareCode string) (*model.Capture, error)
	createFn         func(ctx context.Context, capture *model.Capture) error
	listByEventFn    func(ctx context.Context, eventID int64) ([]model.Capture, error)
	listByGuestFn    func(ctx context.Context, guestID int64) ([]model.Capture, error)
	setTransformFn   func(ctx context.Context, id, jobID int64) error
	markSharedFn     func(ctx context.Context, id, guestID int64) (*model.Capture, error)

	createCalls       int
	setTransformCalls int
}

func (m *mockCaptureStore) GetByID(ctx context.Context, id int64) (*model.Capture, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCaptureStore) GetByShareCode(ctx context.Context, shareCode string) (*model.Capture, error) {
	if m.getByShareCodeFn != nil {
		return m.getByShareCodeFn(ctx, shareCode)
	}
	return nil, nil
}

func (m *mockCaptureStore) Create(ctx context.Context, capture *model.Capture) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, capture)
	}
	return nil
}

func (m *mockCaptureStore) ListByEvent(ctx context.Context, eventID int64) ([]model.Capture, error) {
	if m.listByEventFn != nil {
		return m.listByEventFn(ctx, eventID)
	}
	return []model.Capture{}, nil
}

func (m *mockCaptureStore) ListByGuest(ctx context.Context, guestID int64) ([]model.Capture, error) {
	if m.listByGuestFn != nil {
		return m.listByGuestFn(ctx, guestID)
	}
	return []model.Capture{}, nil
}

func (m *mockCaptureStore) SetTransformJob(ctx context.Context, id, jobID int64) error {
	m.setTransformCalls++
	if m.setTransformFn != nil {
		return m.setTransformFn(ctx, id, jobID)
	}
	return nil
}

func (m *mockCaptureStore) MarkShared(ctx context.Context, id, guestID int64) (*model.Capture, error) {
	if m.markSharedFn != nil {
		return m.markSharedFn(ctx, id, guestID)
	}
	return nil, nil
}

type mockIntegrationStore struct {
	getByWorkspaceFn func(ctx context.Context, workspaceID int64) (*model.StorageIntegration, error)
	upsertFn         func(ctx context.Context, integration *model.StorageIntegration) error
	updateTokensFn   func(ctx context.Context, workspaceID int64, sealedAccess string, sealedRefresh *string, expiresAt *time.Time) error
	markRevokedFn    func(ctx context.Context, workspaceID int64) error
	deleteFn         func(ctx context.Context, workspaceID int64) error

	upsertCalls int
	deleteCalls int
}

func (m *mockIntegrationStore) GetByWorkspace(ctx context.Context, workspaceID int64) (*model.StorageIntegration, error) {
	if m.getByWorkspaceFn != nil {
		return m.getByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockIntegrationStore) Upsert(ctx context.Context, integration *model.StorageIntegration) error {
	m.upsertCalls++
	if m.upsertFn != nil {
		return m.upsertFn(ctx, integration)
	}
	return nil
}

func (m *mockIntegrationStore) UpdateTokens(ctx context.Context, workspaceID int64, sealedAccess string, sealedRefresh *string, expiresAt *time.Time) error {
	if m.updateTokensFn != nil {
		return m.updateTokensFn(ctx, workspaceID, sealedAccess, sealedRefresh, expiresAt)
	}
	return nil
}

func (m *mockIntegrationStore) MarkRevoked(ctx context.Context, workspaceID int64) error {
	if m.markRevokedFn != nil {
		return m.markRevokedFn(ctx, workspaceID)
	}
	return nil
}

func (m *mockIntegrationStore) Delete(ctx context.Context, workspaceID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, workspaceID)
	}
	return nil
}

type mockTransformJobStore struct {
	getByIDFn         func(ctx context.Context, workspaceID, id int64) (*model.TransformJob, error)
	createFn          func(ctx context.Context, job *model.TransformJob) error
	listByWorkspaceFn func(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error)

	createCalls int
}

func (m *mockTransformJobStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.TransformJob, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockTransformJobStore) Create(ctx context.Context, job *model.TransformJob) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, job)
	}
	return nil
}

func (m *mockTransformJobStore) Claim(ctx context.Context, id int64) (*model.TransformJob, error) {
	return nil, nil
}

func (m *mockTransformJobStore) MarkSucceeded(ctx context.Context, id int64, result *model.TransformResult) error {
	return nil
}

func (m *mockTransformJobStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	return nil
}

func (m *mockTransformJobStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID, limit)
	}
	return []model.TransformJob{}, nil
}

type mockSearchIndex struct {
	upsertFn func(ctx context.Context, doc search.Document) error
	deleteFn func(ctx context.Context, id string) error
	searchFn func(ctx context.Context, workspaceID int64, query string, limit int) ([]search.Hit, error)

	upsertCalls int
	deleteCalls int
	searchCalls int
}

func (m *mockSearchIndex) EnsureCollection(ctx context.Context) error {
	return nil
}

func (m *mockSearchIndex) Upsert(ctx context.Context, doc search.Document) error {
	m.upsertCalls++
	if m.upsertFn != nil {
		return m.upsertFn(ctx, doc)
	}
	return nil
}

func (m *mockSearchIndex) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSearchIndex) Search(ctx context.Context, workspaceID int64, query string, limit int) ([]search.Hit, error) {
	m.searchCalls++
	if m.searchFn != nil {
		return m.searchFn(ctx, workspaceID, query, limit)
	}
	return []search.Hit{}, nil
}

type mockProducer struct {
	enqueueFn    func(ctx context.Context, msg queue.TransformMessage) error
	enqueueCalls int
}

func (m *mockProducer) Enqueue(ctx context.Context, msg queue.TransformMessage) error {
	m.enqueueCalls++
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, msg)
	}
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}

type mockTransformer struct {
	enqueueFn    func(ctx context.Context, params service.TransformParams) (*model.TransformJob, error)
	enqueueCalls int
}

func (m *mockTransformer) Enqueue(ctx context.Context, params service.TransformParams) (*model.TransformJob, error) {
	m.enqueueCalls++
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, params)
	}
	return &model.TransformJob{}, nil
}

func (m *mockTransformer) GetJob(ctx context.Context, workspaceID, jobID int64) (*model.TransformJob, error) {
	return nil, nil
}

func (m *mockTransformer) ListJobs(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
	return []model.TransformJob{}, nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
