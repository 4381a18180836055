package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"emcee.events/emcee/common"
	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/store"
)

var (
	ErrEventNotFound             = errors.New("event not found")
	ErrRotationUnknownExperience = errors.New("rotation references an unknown experience")
	ErrRotationUnpublished       = errors.New("rotation references an unpublished experience")
)

type EventService interface {
	Create(ctx context.Context, workspaceID, projectID int64, name string, startsAt, endsAt *time.Time, venue *string, createdBy int64) (*model.Event, error)
	Get(ctx context.Context, workspaceID, eventID int64) (*model.Event, error)
	List(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error)
	UpdateMeta(ctx context.Context, workspaceID, eventID int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error)
	UpdateDraft(ctx context.Context, workspaceID, eventID int64, patch map[string]any) (*model.Event, error)
	Publish(ctx context.Context, workspaceID, eventID int64) (*model.Event, error)
	Delete(ctx context.Context, workspaceID, eventID int64) error
	Guests(ctx context.Context, workspaceID, eventID int64) ([]model.Guest, error)
	Captures(ctx context.Context, workspaceID, eventID int64) ([]model.Capture, error)
}

type eventService struct {
	eventStore      store.EventStore
	projectStore    store.ProjectStore
	experienceStore store.ExperienceStore
	guestStore      store.GuestStore
	captureStore    store.CaptureStore
	searchIndex     search.Client
}

func NewEventService(
	eventStore store.EventStore,
	projectStore store.ProjectStore,
	experienceStore store.ExperienceStore,
	guestStore store.GuestStore,
	captureStore store.CaptureStore,
	searchIndex search.Client,
) EventService {
	return &eventService{
		eventStore:      eventStore,
		projectStore:    projectStore,
		experienceStore: experienceStore,
		guestStore:      guestStore,
		captureStore:    captureStore,
		searchIndex:     searchIndex,
	}
}

func (s *eventService) Create(ctx context.Context, workspaceID, projectID int64, name string, startsAt, endsAt *time.Time, venue *string, createdBy int64) (*model.Event, error) {
	if _, err := s.projectStore.GetByID(ctx, workspaceID, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	shortCode, err := s.ensureShortCode(ctx)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		ProjectID:    projectID,
		Name:         name,
		ShortCode:    shortCode,
		Status:       model.ContentStatusDraft,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		Venue:        venue,
		DraftConfig:  model.DefaultEventConfig(name),
		DraftVersion: 1,
		CreatedBy:    createdBy,
	}

	if err := s.eventStore.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	slog.InfoContext(ctx, "event created",
		"event_id", event.ID,
		"project_id", projectID,
		"workspace_id", workspaceID,
		"short_code", shortCode,
	)

	return event, nil
}

func (s *eventService) Get(ctx context.Context, workspaceID, eventID int64) (*model.Event, error) {
	event, err := s.eventStore.GetByID(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error) {
	return s.eventStore.ListByProject(ctx, workspaceID, projectID)
}

func (s *eventService) UpdateMeta(ctx context.Context, workspaceID, eventID int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error) {
	event, err := s.eventStore.UpdateMeta(ctx, workspaceID, eventID, name, startsAt, endsAt, venue)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("updating event: %w", err)
	}

	if event.IsPublished() {
		s.index(ctx, event)
	}

	return event, nil
}

func (s *eventService) UpdateDraft(ctx context.Context, workspaceID, eventID int64, patch map[string]any) (*model.Event, error) {
	if err := validateDraftPatch(patch); err != nil {
		return nil, err
	}

	event, err := s.eventStore.UpdateDraft(ctx, workspaceID, eventID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("updating event draft: %w", err)
	}
	return event, nil
}

func (s *eventService) Publish(ctx context.Context, workspaceID, eventID int64) (*model.Event, error) {
	event, err := s.Get(ctx, workspaceID, eventID)
	if err != nil {
		return nil, err
	}
	if !event.HasDraftContent() {
		return nil, ErrNoDraft
	}

	if err := s.validateRotation(ctx, workspaceID, event.DraftConfig); err != nil {
		return nil, err
	}

	published, err := s.eventStore.Publish(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("publishing event: %w", err)
	}

	s.index(ctx, published)

	slog.InfoContext(ctx, "event published",
		"event_id", eventID,
		"workspace_id", workspaceID,
		"version", published.PublishedVersion,
	)

	return published, nil
}

func (s *eventService) Delete(ctx context.Context, workspaceID, eventID int64) error {
	if err := s.eventStore.Delete(ctx, workspaceID, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("deleting event: %w", err)
	}

	deindexContent(ctx, s.searchIndex, eventID)

	slog.InfoContext(ctx, "event deleted",
		"event_id", eventID,
		"workspace_id", workspaceID,
	)

	return nil
}

func (s *eventService) Guests(ctx context.Context, workspaceID, eventID int64) ([]model.Guest, error) {
	if _, err := s.Get(ctx, workspaceID, eventID); err != nil {
		return nil, err
	}
	return s.guestStore.ListByEvent(ctx, eventID)
}

func (s *eventService) Captures(ctx context.Context, workspaceID, eventID int64) ([]model.Capture, error) {
	if _, err := s.Get(ctx, workspaceID, eventID); err != nil {
		return nil, err
	}
	return s.captureStore.ListByEvent(ctx, eventID)
}

// validateRotation refuses to publish an event whose rotation points at
// experiences guests could not actually run.
func (s *eventService) validateRotation(ctx context.Context, workspaceID int64, draft map[string]any) error {
	rotation := model.EventRotation(draft)
	if len(rotation) == 0 {
		return nil
	}

	experiences, err := s.experienceStore.GetManyByIDs(ctx, workspaceID, rotation)
	if err != nil {
		return fmt.Errorf("loading rotation experiences: %w", err)
	}

	byID := make(map[int64]*model.Experience, len(experiences))
	for i := range experiences {
		byID[experiences[i].ID] = &experiences[i]
	}

	for _, expID := range rotation {
		exp, ok := byID[expID]
		if !ok {
			return ErrRotationUnknownExperience
		}
		if !exp.IsPublished() {
			return ErrRotationUnpublished
		}
	}
	return nil
}

func (s *eventService) ensureShortCode(ctx context.Context) (string, error) {
	for i := 0; i < 5; i++ {
		candidate := common.NewShortCode()
		exists, err := s.eventStore.ShortCodeExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking short code availability: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unable to find available short code")
}

func (s *eventService) index(ctx context.Context, e *model.Event) {
	indexContent(ctx, s.searchIndex, contentDocument(e.ID, e.WorkspaceID, "event", e.Name, e.ShortCode, e.PublishedAt))
}
