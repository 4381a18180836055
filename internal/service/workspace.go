package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emcee.events/emcee/common"
	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/store"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceService interface {
	Create(ctx context.Context, name string, slug *string, description *string, userID int64) (*model.Workspace, error)
	Get(ctx context.Context, workspaceID int64) (*model.Workspace, error)
	Update(ctx context.Context, workspaceID int64, name, slug, description *string) (*model.Workspace, error)
	Delete(ctx context.Context, workspaceID int64) error
	ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error)
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
	memberStore    store.MemberStore
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore, memberStore store.MemberStore) WorkspaceService {
	return &workspaceService{
		workspaceStore: workspaceStore,
		memberStore:    memberStore,
	}
}

func (s *workspaceService) Create(ctx context.Context, name string, slug *string, description *string, userID int64) (*model.Workspace, error) {
	finalSlug, err := s.ensureSlug(ctx, name, slug)
	if err != nil {
		return nil, err
	}

	ws := &model.Workspace{
		ID:          id.New(),
		Name:        name,
		Slug:        finalSlug,
		Description: description,
		Status:      model.WorkspaceStatusActive,
		CreatedBy:   userID,
	}

	if err := s.workspaceStore.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	member := &model.WorkspaceMember{
		ID:          id.New(),
		WorkspaceID: ws.ID,
		UserID:      userID,
		Role:        model.RoleOwner,
	}

	if err := s.memberStore.Create(ctx, member); err != nil {
		// A workspace without an owner is unreachable, so undo the create.
		if delErr := s.workspaceStore.Delete(ctx, ws.ID); delErr != nil {
			slog.ErrorContext(ctx, "failed to roll back workspace after membership failure",
				"error", delErr,
				"workspace_id", ws.ID,
			)
		}
		return nil, fmt.Errorf("creating owner membership: %w", err)
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"slug", ws.Slug,
		"user_id", userID,
	)

	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	ws, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) Update(ctx context.Context, workspaceID int64, name, slug, description *string) (*model.Workspace, error) {
	ws, err := s.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		ws.Name = *name
	}
	if slug != nil && *slug != "" && *slug != ws.Slug {
		finalSlug, err := s.ensureSlug(ctx, ws.Name, slug)
		if err != nil {
			return nil, err
		}
		ws.Slug = finalSlug
	}
	if description != nil {
		ws.Description = description
	}

	if err := s.workspaceStore.Update(ctx, ws); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("updating workspace: %w", err)
	}

	return ws, nil
}

func (s *workspaceService) Delete(ctx context.Context, workspaceID int64) error {
	if err := s.workspaceStore.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("deleting workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace deleted", "workspace_id", workspaceID)

	return nil
}

func (s *workspaceService) ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	return s.workspaceStore.ListByUser(ctx, userID)
}

func (s *workspaceService) ensureSlug(ctx context.Context, name string, slug *string) (string, error) {
	// An explicitly chosen slug is kept verbatim when well-formed;
	// anything else is derived from the name.
	var base string
	if slug != nil && common.IsValidSlug(*slug) {
		base = *slug
	} else {
		input := name
		if slug != nil && *slug != "" {
			input = *slug
		}
		derived, err := common.Slugify(input, "workspace")
		if err != nil {
			return "", fmt.Errorf("generating slug: %w", err)
		}
		base = derived
	}

	// Fast path
	if _, err := s.workspaceStore.GetBySlug(ctx, base); err != nil {
		if err == store.ErrNotFound {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := s.workspaceStore.GetBySlug(ctx, candidate)
		if err == store.ErrNotFound {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
