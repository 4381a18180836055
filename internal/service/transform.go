package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/queue"
	"emcee.events/emcee/internal/store"
)

var (
	ErrJobNotFound       = errors.New("transform job not found")
	ErrCaptureMismatch   = errors.New("capture does not belong to this project")
	ErrPresetUnpublished = errors.New("preset has no published config")
)

type TransformParams struct {
	WorkspaceID int64
	ProjectID   int64
	CaptureID   int64
	PresetID    int64
	TraceID     *string
}

type TransformService interface {
	Enqueue(ctx context.Context, params TransformParams) (*model.TransformJob, error)
	GetJob(ctx context.Context, workspaceID, jobID int64) (*model.TransformJob, error)
	ListJobs(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error)
}

type transformService struct {
	jobStore     store.TransformJobStore
	captureStore store.CaptureStore
	presetStore  store.PresetStore
	producer     queue.Producer
}

func NewTransformService(jobStore store.TransformJobStore, captureStore store.CaptureStore, presetStore store.PresetStore, producer queue.Producer) TransformService {
	return &transformService{
		jobStore:     jobStore,
		captureStore: captureStore,
		presetStore:  presetStore,
		producer:     producer,
	}
}

func (s *transformService) Enqueue(ctx context.Context, params TransformParams) (*model.TransformJob, error) {
	capture, err := s.captureStore.GetByID(ctx, params.CaptureID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCaptureNotFound
		}
		return nil, fmt.Errorf("getting capture: %w", err)
	}
	if capture.ProjectID != params.ProjectID {
		return nil, ErrCaptureMismatch
	}

	preset, err := s.presetStore.GetByID(ctx, params.WorkspaceID, params.PresetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("getting preset: %w", err)
	}
	if !preset.IsPublished() {
		return nil, ErrPresetUnpublished
	}

	job := &model.TransformJob{
		ID:          id.New(),
		WorkspaceID: params.WorkspaceID,
		ProjectID:   params.ProjectID,
		CaptureID:   params.CaptureID,
		PresetID:    params.PresetID,
		Status:      model.TransformJobStatusQueued,
	}

	if err := s.jobStore.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating transform job: %w", err)
	}

	if err := s.captureStore.SetTransformJob(ctx, params.CaptureID, job.ID); err != nil {
		slog.WarnContext(ctx, "failed to link transform job to capture",
			"error", err,
			"capture_id", params.CaptureID,
			"job_id", job.ID,
		)
	}

	if err := s.producer.Enqueue(ctx, queue.TransformMessage{
		JobID:       job.ID,
		WorkspaceID: params.WorkspaceID,
		TraceID:     params.TraceID,
		Attempt:     1,
	}); err != nil {
		// The queued job document stays behind; a re-enqueue of the same
		// capture produces a fresh job.
		return nil, fmt.Errorf("enqueueing transform job: %w", err)
	}

	slog.InfoContext(ctx, "transform job enqueued",
		"job_id", job.ID,
		"capture_id", params.CaptureID,
		"preset_id", params.PresetID,
		"workspace_id", params.WorkspaceID,
	)

	return job, nil
}

func (s *transformService) GetJob(ctx context.Context, workspaceID, jobID int64) (*model.TransformJob, error) {
	job, err := s.jobStore.GetByID(ctx, workspaceID, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting transform job: %w", err)
	}
	return job, nil
}

func (s *transformService) ListJobs(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.jobStore.ListByWorkspace(ctx, workspaceID, limit)
}
