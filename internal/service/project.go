package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emcee.events/emcee/common"
	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/store"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService interface {
	Create(ctx context.Context, workspaceID int64, name string, createdBy int64) (*model.Project, error)
	Get(ctx context.Context, workspaceID, projectID int64) (*model.Project, error)
	List(ctx context.Context, workspaceID int64) ([]model.Project, error)
	Rename(ctx context.Context, workspaceID, projectID int64, name string) (*model.Project, error)
	UpdateDraft(ctx context.Context, workspaceID, projectID int64, patch map[string]any) (*model.Project, error)
	Publish(ctx context.Context, workspaceID, projectID int64) (*model.Project, error)
	Duplicate(ctx context.Context, workspaceID, projectID, createdBy int64) (*model.Project, error)
	Delete(ctx context.Context, workspaceID, projectID int64) error
}

type projectService struct {
	projectStore store.ProjectStore
	searchIndex  search.Client
}

func NewProjectService(projectStore store.ProjectStore, searchIndex search.Client) ProjectService {
	return &projectService{
		projectStore: projectStore,
		searchIndex:  searchIndex,
	}
}

func (s *projectService) Create(ctx context.Context, workspaceID int64, name string, createdBy int64) (*model.Project, error) {
	project := &model.Project{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		Name:         name,
		Status:       model.ContentStatusDraft,
		DraftConfig:  model.DefaultProjectConfig(),
		DraftVersion: 1,
		CreatedBy:    createdBy,
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	slog.InfoContext(ctx, "project created",
		"project_id", project.ID,
		"workspace_id", workspaceID,
	)

	return project, nil
}

func (s *projectService) Get(ctx context.Context, workspaceID, projectID int64) (*model.Project, error) {
	project, err := s.projectStore.GetByID(ctx, workspaceID, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, workspaceID int64) ([]model.Project, error) {
	return s.projectStore.List(ctx, workspaceID)
}

func (s *projectService) Rename(ctx context.Context, workspaceID, projectID int64, name string) (*model.Project, error) {
	project, err := s.projectStore.UpdateName(ctx, workspaceID, projectID, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("renaming project: %w", err)
	}

	if project.IsPublished() {
		s.index(ctx, project)
	}

	return project, nil
}

func (s *projectService) UpdateDraft(ctx context.Context, workspaceID, projectID int64, patch map[string]any) (*model.Project, error) {
	if err := validateDraftPatch(patch); err != nil {
		return nil, err
	}

	project, err := s.projectStore.UpdateDraft(ctx, workspaceID, projectID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project draft: %w", err)
	}
	return project, nil
}

func (s *projectService) Publish(ctx context.Context, workspaceID, projectID int64) (*model.Project, error) {
	project, err := s.Get(ctx, workspaceID, projectID)
	if err != nil {
		return nil, err
	}
	if !project.HasDraftContent() {
		return nil, ErrNoDraft
	}

	published, err := s.projectStore.Publish(ctx, workspaceID, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("publishing project: %w", err)
	}

	s.index(ctx, published)

	slog.InfoContext(ctx, "project published",
		"project_id", projectID,
		"workspace_id", workspaceID,
		"version", published.PublishedVersion,
	)

	return published, nil
}

func (s *projectService) Duplicate(ctx context.Context, workspaceID, projectID, createdBy int64) (*model.Project, error) {
	src, err := s.Get(ctx, workspaceID, projectID)
	if err != nil {
		return nil, err
	}

	existing, err := s.projectStore.List(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		taken[p.Name] = true
	}

	name := src.Name
	for i := 0; taken[name]; i++ {
		if i >= 50 {
			return nil, fmt.Errorf("unable to find available name for %q", src.Name)
		}
		name = common.CopyName(name)
	}

	// Only the draft block travels. The duplicate starts unpublished no
	// matter what the source was.
	dup := &model.Project{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		Name:         name,
		Status:       model.ContentStatusDraft,
		DraftConfig:  cloneConfig(src.DraftConfig),
		DraftVersion: 1,
		CreatedBy:    createdBy,
	}

	if err := s.projectStore.Create(ctx, dup); err != nil {
		return nil, fmt.Errorf("creating duplicate project: %w", err)
	}

	slog.InfoContext(ctx, "project duplicated",
		"source_project_id", projectID,
		"project_id", dup.ID,
		"workspace_id", workspaceID,
	)

	return dup, nil
}

func (s *projectService) Delete(ctx context.Context, workspaceID, projectID int64) error {
	if err := s.projectStore.Delete(ctx, workspaceID, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	deindexContent(ctx, s.searchIndex, projectID)

	slog.InfoContext(ctx, "project deleted",
		"project_id", projectID,
		"workspace_id", workspaceID,
	)

	return nil
}

func (s *projectService) index(ctx context.Context, p *model.Project) {
	indexContent(ctx, s.searchIndex, contentDocument(p.ID, p.WorkspaceID, "project", p.Name, "", p.PublishedAt))
}
