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

var ErrPresetNotFound = errors.New("AI preset not found")

type PresetService interface {
	Create(ctx context.Context, workspaceID int64, name string, createdBy int64) (*model.AIPreset, error)
	Get(ctx context.Context, workspaceID, presetID int64) (*model.AIPreset, error)
	List(ctx context.Context, workspaceID int64) ([]model.AIPreset, error)
	Rename(ctx context.Context, workspaceID, presetID int64, name string) (*model.AIPreset, error)
	UpdateDraft(ctx context.Context, workspaceID, presetID int64, patch map[string]any) (*model.AIPreset, error)
	Publish(ctx context.Context, workspaceID, presetID int64) (*model.AIPreset, error)
	Delete(ctx context.Context, workspaceID, presetID int64) error
}

type presetService struct {
	presetStore store.PresetStore
	searchIndex search.Client
}

func NewPresetService(presetStore store.PresetStore, searchIndex search.Client) PresetService {
	return &presetService{
		presetStore: presetStore,
		searchIndex: searchIndex,
	}
}

func (s *presetService) Create(ctx context.Context, workspaceID int64, name string, createdBy int64) (*model.AIPreset, error) {
	preset := &model.AIPreset{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		Name:         name,
		Status:       model.ContentStatusDraft,
		DraftConfig:  model.DefaultPresetConfig(),
		DraftVersion: 1,
		CreatedBy:    createdBy,
	}

	if err := s.presetStore.Create(ctx, preset); err != nil {
		return nil, fmt.Errorf("creating preset: %w", err)
	}

	slog.InfoContext(ctx, "preset created",
		"preset_id", preset.ID,
		"workspace_id", workspaceID,
	)

	return preset, nil
}

func (s *presetService) Get(ctx context.Context, workspaceID, presetID int64) (*model.AIPreset, error) {
	preset, err := s.presetStore.GetByID(ctx, workspaceID, presetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("getting preset: %w", err)
	}
	return preset, nil
}

func (s *presetService) List(ctx context.Context, workspaceID int64) ([]model.AIPreset, error) {
	return s.presetStore.List(ctx, workspaceID)
}

func (s *presetService) Rename(ctx context.Context, workspaceID, presetID int64, name string) (*model.AIPreset, error) {
	preset, err := s.presetStore.UpdateName(ctx, workspaceID, presetID, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("renaming preset: %w", err)
	}

	if preset.IsPublished() {
		s.index(ctx, preset)
	}

	return preset, nil
}

func (s *presetService) UpdateDraft(ctx context.Context, workspaceID, presetID int64, patch map[string]any) (*model.AIPreset, error) {
	if err := validateDraftPatch(patch); err != nil {
		return nil, err
	}

	preset, err := s.presetStore.UpdateDraft(ctx, workspaceID, presetID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("updating preset draft: %w", err)
	}
	return preset, nil
}

func (s *presetService) Publish(ctx context.Context, workspaceID, presetID int64) (*model.AIPreset, error) {
	preset, err := s.Get(ctx, workspaceID, presetID)
	if err != nil {
		return nil, err
	}
	if !preset.HasDraftContent() {
		return nil, ErrNoDraft
	}

	published, err := s.presetStore.Publish(ctx, workspaceID, presetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("publishing preset: %w", err)
	}

	s.index(ctx, published)

	slog.InfoContext(ctx, "preset published",
		"preset_id", presetID,
		"workspace_id", workspaceID,
		"version", published.PublishedVersion,
	)

	return published, nil
}

func (s *presetService) Delete(ctx context.Context, workspaceID, presetID int64) error {
	if err := s.presetStore.Delete(ctx, workspaceID, presetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPresetNotFound
		}
		return fmt.Errorf("deleting preset: %w", err)
	}

	deindexContent(ctx, s.searchIndex, presetID)

	slog.InfoContext(ctx, "preset deleted",
		"preset_id", presetID,
		"workspace_id", workspaceID,
	)

	return nil
}

func (s *presetService) index(ctx context.Context, p *model.AIPreset) {
	indexContent(ctx, s.searchIndex, contentDocument(p.ID, p.WorkspaceID, "preset", p.Name, "", p.PublishedAt))
}
