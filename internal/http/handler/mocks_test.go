package handler_test

import (
	"context"
	"time"

	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
)

type mockWorkspaceService struct {
	createFn      func(ctx context.Context, name string, slug, description *string, userID int64) (*model.Workspace, error)
	getFn         func(ctx context.Context, workspaceID int64) (*model.Workspace, error)
	updateFn      func(ctx context.Context, workspaceID int64, name, slug, description *string) (*model.Workspace, error)
	deleteFn      func(ctx context.Context, workspaceID int64) error
	listForUserFn func(ctx context.Context, userID int64) ([]model.Workspace, error)
}

func (m *mockWorkspaceService) Create(ctx context.Context, name string, slug, description *string, userID int64) (*model.Workspace, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, slug, description, userID)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Get(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	if m.getFn != nil {
		return m.getFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Update(ctx context.Context, workspaceID int64, name, slug, description *string) (*model.Workspace, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, workspaceID, name, slug, description)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Delete(ctx context.Context, workspaceID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, workspaceID)
	}
	return nil
}

func (m *mockWorkspaceService) ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return []model.Workspace{}, nil
}

type mockEventService struct {
	createFn      func(ctx context.Context, workspaceID, projectID int64, name string, startsAt, endsAt *time.Time, venue *string, createdBy int64) (*model.Event, error)
	getFn         func(ctx context.Context, workspaceID, eventID int64) (*model.Event, error)
	listFn        func(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error)
	updateMetaFn  func(ctx context.Context, workspaceID, eventID int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error)
	updateDraftFn func(ctx context.Context, workspaceID, eventID int64, patch map[string]any) (*model.Event, error)
	publishFn     func(ctx context.Context, workspaceID, eventID int64) (*model.Event, error)
	deleteFn      func(ctx context.Context, workspaceID, eventID int64) error
	guestsFn      func(ctx context.Context, workspaceID, eventID int64) ([]model.Guest, error)
	capturesFn    func(ctx context.Context, workspaceID, eventID int64) ([]model.Capture, error)
}

func (m *mockEventService) Create(ctx context.Context, workspaceID, projectID int64, name string, startsAt, endsAt *time.Time, venue *string, createdBy int64) (*model.Event, error) {
	if m.createFn != nil {
		return m.createFn(ctx, workspaceID, projectID, name, startsAt, endsAt, venue, createdBy)
	}
	return nil, nil
}

func (m *mockEventService) Get(ctx context.Context, workspaceID, eventID int64) (*model.Event, error) {
	if m.getFn != nil {
		return m.getFn(ctx, workspaceID, eventID)
	}
	return nil, nil
}

func (m *mockEventService) List(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID, projectID)
	}
	return []model.Event{}, nil
}

func (m *mockEventService) UpdateMeta(ctx context.Context, workspaceID, eventID int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error) {
	if m.updateMetaFn != nil {
		return m.updateMetaFn(ctx, workspaceID, eventID, name, startsAt, endsAt, venue)
	}
	return nil, nil
}

func (m *mockEventService) UpdateDraft(ctx context.Context, workspaceID, eventID int64, patch map[string]any) (*model.Event, error) {
	if m.updateDraftFn != nil {
		return m.updateDraftFn(ctx, workspaceID, eventID, patch)
	}
	return nil, nil
}

func (m *mockEventService) Publish(ctx context.Context, workspaceID, eventID int64) (*model.Event, error) {
	if m.publishFn != nil {
		return m.publishFn(ctx, workspaceID, eventID)
	}
	return nil, nil
}

func (m *mockEventService) Delete(ctx context.Context, workspaceID, eventID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, workspaceID, eventID)
	}
	return nil
}

func (m *mockEventService) Guests(ctx context.Context, workspaceID, eventID int64) ([]model.Guest, error) {
	if m.guestsFn != nil {
		return m.guestsFn(ctx, workspaceID, eventID)
	}
	return []model.Guest{}, nil
}

func (m *mockEventService) Captures(ctx context.Context, workspaceID, eventID int64) ([]model.Capture, error) {
	if m.capturesFn != nil {
		return m.capturesFn(ctx, workspaceID, eventID)
	}
	return []model.Capture{}, nil
}

type mockGuestFlowService struct {
	startSessionFn       func(ctx context.Context, rawShortCode string) (*service.GuestSession, error)
	getFlowFn            func(ctx context.Context, identity service.GuestIdentity) (*model.Guest, *service.FlowComposition, error)
	advanceFn            func(ctx context.Context, identity service.GuestIdentity, target model.FlowState, payload service.AdvancePayload) (*model.Guest, error)
	completeExperienceFn func(ctx context.Context, identity service.GuestIdentity, experienceID int64, capture *service.CaptureInput) (*service.CompletionResult, error)
	listCapturesFn       func(ctx context.Context, identity service.GuestIdentity) ([]model.Capture, error)
	shareCaptureFn       func(ctx context.Context, identity service.GuestIdentity, captureID int64) (*model.Capture, string, error)
	getSharedCaptureFn   func(ctx context.Context, rawCode string) (*model.Capture, error)
}

func (m *mockGuestFlowService) StartSession(ctx context.Context, rawShortCode string) (*service.GuestSession, error) {
	if m.startSessionFn != nil {
		return m.startSessionFn(ctx, rawShortCode)
	}
	return nil, nil
}

func (m *mockGuestFlowService) GetFlow(ctx context.Context, identity service.GuestIdentity) (*model.Guest, *service.FlowComposition, error) {
	if m.getFlowFn != nil {
		return m.getFlowFn(ctx, identity)
	}
	return nil, nil, nil
}

func (m *mockGuestFlowService) Advance(ctx context.Context, identity service.GuestIdentity, target model.FlowState, payload service.AdvancePayload) (*model.Guest, error) {
	if m.advanceFn != nil {
		return m.advanceFn(ctx, identity, target, payload)
	}
	return nil, nil
}

func (m *mockGuestFlowService) CompleteExperience(ctx context.Context, identity service.GuestIdentity, experienceID int64, capture *service.CaptureInput) (*service.CompletionResult, error) {
	if m.completeExperienceFn != nil {
		return m.completeExperienceFn(ctx, identity, experienceID, capture)
	}
	return nil, nil
}

func (m *mockGuestFlowService) ListCaptures(ctx context.Context, identity service.GuestIdentity) ([]model.Capture, error) {
	if m.listCapturesFn != nil {
		return m.listCapturesFn(ctx, identity)
	}
	return []model.Capture{}, nil
}

func (m *mockGuestFlowService) ShareCapture(ctx context.Context, identity service.GuestIdentity, captureID int64) (*model.Capture, string, error) {
	if m.shareCaptureFn != nil {
		return m.shareCaptureFn(ctx, identity, captureID)
	}
	return nil, "", nil
}

func (m *mockGuestFlowService) GetSharedCapture(ctx context.Context, rawCode string) (*model.Capture, error) {
	if m.getSharedCaptureFn != nil {
		return m.getSharedCaptureFn(ctx, rawCode)
	}
	return nil, nil
}

type mockTransformService struct {
	enqueueFn  func(ctx context.Context, params service.TransformParams) (*model.TransformJob, error)
	getJobFn   func(ctx context.Context, workspaceID, jobID int64) (*model.TransformJob, error)
	listJobsFn func(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error)
}

func (m *mockTransformService) Enqueue(ctx context.Context, params service.TransformParams) (*model.TransformJob, error) {
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, params)
	}
	return nil, nil
}

func (m *mockTransformService) GetJob(ctx context.Context, workspaceID, jobID int64) (*model.TransformJob, error) {
	if m.getJobFn != nil {
		return m.getJobFn(ctx, workspaceID, jobID)
	}
	return nil, nil
}

func (m *mockTransformService) ListJobs(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
	if m.listJobsFn != nil {
		return m.listJobsFn(ctx, workspaceID, limit)
	}
	return []model.TransformJob{}, nil
}
