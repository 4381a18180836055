package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/store"
)

var (
	ErrExperienceNotFound    = errors.New("experience not found")
	ErrInvalidExperienceKind = errors.New("invalid experience kind")
	ErrPresetRefNotFound     = errors.New("config references an unknown AI preset")
	ErrPresetRefUnpublished  = errors.New("config references an unpublished AI preset")
)

type ExperienceService interface {
	Create(ctx context.Context, workspaceID, projectID int64, name string, kind model.ExperienceKind, createdBy int64) (*model.Experience, error)
	Get(ctx context.Context, workspaceID, experienceID int64) (*model.Experience, error)
	List(ctx context.Context, workspaceID, projectID int64) ([]model.Experience, error)
	Rename(ctx context.Context, workspaceID, experienceID int64, name string) (*model.Experience, error)
	UpdateDraft(ctx context.Context, workspaceID, experienceID int64, patch map[string]any) (*model.Experience, error)
	Publish(ctx context.Context, workspaceID, experienceID int64) (*model.Experience, error)
	Delete(ctx context.Context, workspaceID, experienceID int64) error
}

type experienceService struct {
	experienceStore store.ExperienceStore
	projectStore    store.ProjectStore
	presetStore     store.PresetStore
	searchIndex     search.Client
}

func NewExperienceService(experienceStore store.ExperienceStore, projectStore store.ProjectStore, presetStore store.PresetStore, searchIndex search.Client) ExperienceService {
	return &experienceService{
		experienceStore: experienceStore,
		projectStore:    projectStore,
		presetStore:     presetStore,
		searchIndex:     searchIndex,
	}
}

func (s *experienceService) Create(ctx context.Context, workspaceID, projectID int64, name string, kind model.ExperienceKind, createdBy int64) (*model.Experience, error) {
	if !kind.Valid() {
		return nil, ErrInvalidExperienceKind
	}

	if _, err := s.projectStore.GetByID(ctx, workspaceID, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	experience := &model.Experience{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		ProjectID:    projectID,
		Name:         name,
		Kind:         kind,
		Status:       model.ContentStatusDraft,
		DraftConfig:  model.DefaultExperienceConfig(kind),
		DraftVersion: 1,
		CreatedBy:    createdBy,
	}

	if err := s.experienceStore.Create(ctx, experience); err != nil {
		return nil, fmt.Errorf("creating experience: %w", err)
	}

	slog.InfoContext(ctx, "experience created",
		"experience_id", experience.ID,
		"project_id", projectID,
		"workspace_id", workspaceID,
		"kind", kind,
	)

	return experience, nil
}

func (s *experienceService) Get(ctx context.Context, workspaceID, experienceID int64) (*model.Experience, error) {
	experience, err := s.experienceStore.GetByID(ctx, workspaceID, experienceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("getting experience: %w", err)
	}
	return experience, nil
}

func (s *experienceService) List(ctx context.Context, workspaceID, projectID int64) ([]model.Experience, error) {
	return s.experienceStore.ListByProject(ctx, workspaceID, projectID)
}

func (s *experienceService) Rename(ctx context.Context, workspaceID, experienceID int64, name string) (*model.Experience, error) {
	experience, err := s.experienceStore.UpdateName(ctx, workspaceID, experienceID, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("renaming experience: %w", err)
	}

	if experience.IsPublished() {
		s.index(ctx, experience)
	}

	return experience, nil
}

func (s *experienceService) UpdateDraft(ctx context.Context, workspaceID, experienceID int64, patch map[string]any) (*model.Experience, error) {
	if err := validateDraftPatch(patch); err != nil {
		return nil, err
	}

	experience, err := s.experienceStore.UpdateDraft(ctx, workspaceID, experienceID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("updating experience draft: %w", err)
	}
	return experience, nil
}

func (s *experienceService) Publish(ctx context.Context, workspaceID, experienceID int64) (*model.Experience, error) {
	experience, err := s.Get(ctx, workspaceID, experienceID)
	if err != nil {
		return nil, err
	}
	if !experience.HasDraftContent() {
		return nil, ErrNoDraft
	}

	// An experience that names a preset must name one the worker can load
	// once guests start producing captures.
	if presetID, ok := model.ExperiencePresetID(experience.DraftConfig); ok {
		preset, err := s.presetStore.GetByID(ctx, workspaceID, presetID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrPresetRefNotFound
			}
			return nil, fmt.Errorf("getting referenced preset: %w", err)
		}
		if !preset.IsPublished() {
			return nil, ErrPresetRefUnpublished
		}
	}

	published, err := s.experienceStore.Publish(ctx, workspaceID, experienceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("publishing experience: %w", err)
	}

	s.index(ctx, published)

	slog.InfoContext(ctx, "experience published",
		"experience_id", experienceID,
		"workspace_id", workspaceID,
		"version", published.PublishedVersion,
	)

	return published, nil
}

func (s *experienceService) Delete(ctx context.Context, workspaceID, experienceID int64) error {
	if err := s.experienceStore.Delete(ctx, workspaceID, experienceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("deleting experience: %w", err)
	}

	deindexContent(ctx, s.searchIndex, experienceID)

	slog.InfoContext(ctx, "experience deleted",
		"experience_id", experienceID,
		"workspace_id", workspaceID,
	)

	return nil
}

func (s *experienceService) index(ctx context.Context, e *model.Experience) {
	indexContent(ctx, s.searchIndex, contentDocument(e.ID, e.WorkspaceID, "experience", e.Name, "", e.PublishedAt))
}
