package service

import (
	"context"
	"fmt"
	"log/slog"

	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/store"
)

type SearchService interface {
	Search(ctx context.Context, workspaceID int64, query string, limit int) ([]search.Hit, error)
	Reindex(ctx context.Context, workspaceID int64) (int, error)
}

type searchService struct {
	projectStore    store.ProjectStore
	eventStore      store.EventStore
	experienceStore store.ExperienceStore
	presetStore     store.PresetStore
	searchIndex     search.Client
}

func NewSearchService(
	projectStore store.ProjectStore,
	eventStore store.EventStore,
	experienceStore store.ExperienceStore,
	presetStore store.PresetStore,
	searchIndex search.Client,
) SearchService {
	return &searchService{
		projectStore:    projectStore,
		eventStore:      eventStore,
		experienceStore: experienceStore,
		presetStore:     presetStore,
		searchIndex:     searchIndex,
	}
}

// Search is advisory. A failing backend degrades to an empty result set
// instead of breaking the studio view that embeds it.
func (s *searchService) Search(ctx context.Context, workspaceID int64, query string, limit int) ([]search.Hit, error) {
	if query == "" {
		return []search.Hit{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	hits, err := s.searchIndex.Search(ctx, workspaceID, query, limit)
	if err != nil {
		slog.WarnContext(ctx, "search query failed",
			"error", err,
			"workspace_id", workspaceID,
		)
		return []search.Hit{}, nil
	}
	return hits, nil
}

// Reindex pushes every published document in the workspace back into the
// index. It is an explicit repair action, so failures surface to the caller
// instead of degrading.
func (s *searchService) Reindex(ctx context.Context, workspaceID int64) (int, error) {
	indexed := 0

	projects, err := s.projectStore.List(ctx, workspaceID)
	if err != nil {
		return indexed, fmt.Errorf("listing projects: %w", err)
	}

	for i := range projects {
		project := &projects[i]
		if project.IsPublished() {
			doc := contentDocument(project.ID, workspaceID, "project", project.Name, "", project.PublishedAt)
			if err := s.searchIndex.Upsert(ctx, doc); err != nil {
				return indexed, fmt.Errorf("indexing project %d: %w", project.ID, err)
			}
			indexed++
		}

		events, err := s.eventStore.ListByProject(ctx, workspaceID, project.ID)
		if err != nil {
			return indexed, fmt.Errorf("listing events: %w", err)
		}
		for j := range events {
			event := &events[j]
			if !event.IsPublished() {
				continue
			}
			doc := contentDocument(event.ID, workspaceID, "event", event.Name, event.ShortCode, event.PublishedAt)
			if err := s.searchIndex.Upsert(ctx, doc); err != nil {
				return indexed, fmt.Errorf("indexing event %d: %w", event.ID, err)
			}
			indexed++
		}

		experiences, err := s.experienceStore.ListByProject(ctx, workspaceID, project.ID)
		if err != nil {
			return indexed, fmt.Errorf("listing experiences: %w", err)
		}
		for j := range experiences {
			experience := &experiences[j]
			if !experience.IsPublished() {
				continue
			}
			doc := contentDocument(experience.ID, workspaceID, "experience", experience.Name, "", experience.PublishedAt)
			if err := s.searchIndex.Upsert(ctx, doc); err != nil {
				return indexed, fmt.Errorf("indexing experience %d: %w", experience.ID, err)
			}
			indexed++
		}
	}

	presets, err := s.presetStore.List(ctx, workspaceID)
	if err != nil {
		return indexed, fmt.Errorf("listing presets: %w", err)
	}
	for i := range presets {
		preset := &presets[i]
		if !preset.IsPublished() {
			continue
		}
		doc := contentDocument(preset.ID, workspaceID, "preset", preset.Name, "", preset.PublishedAt)
		if err := s.searchIndex.Upsert(ctx, doc); err != nil {
			return indexed, fmt.Errorf("indexing preset %d: %w", preset.ID, err)
		}
		indexed++
	}

	slog.InfoContext(ctx, "workspace reindexed",
		"workspace_id", workspaceID,
		"documents", indexed,
	)

	return indexed, nil
}
