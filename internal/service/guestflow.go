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
	"emcee.events/emcee/internal/store"
)

var (
	ErrEventNotLive            = errors.New("event is not accepting guests")
	ErrGuestNotFound           = errors.New("guest not found")
	ErrInvalidTransition       = errors.New("invalid flow transition")
	ErrNoCompletedExperience   = errors.New("at least one completed experience is required")
	ErrExperienceNotInRotation = errors.New("experience is not part of this event")
	ErrCaptureNotFound         = errors.New("capture not found")
	ErrInvalidMediaType        = errors.New("invalid media type")
)

// ExperienceSummary is the published view of one rotation entry.
type ExperienceSummary struct {
	ID     int64                `json:"id"`
	Name   string               `json:"name"`
	Kind   model.ExperienceKind `json:"kind"`
	Config map[string]any       `json:"config"`
}

// FlowComposition is everything a guest client needs to render the event
// flow, assembled from published configs only.
type FlowComposition struct {
	EventID   int64               `json:"event_id"`
	EventName string              `json:"event_name"`
	JoinURL   string              `json:"join_url"`
	Config    map[string]any      `json:"config"`
	Rotation  []ExperienceSummary `json:"rotation"`
}

type GuestSession struct {
	Guest       *model.Guest
	Token       string
	Composition *FlowComposition
}

// AdvancePayload carries the optional pregate form submitted alongside an
// advance request.
type AdvancePayload struct {
	DisplayName *string
	Email       *string
	Answers     map[string]string
	Consent     bool
}

func (p AdvancePayload) empty() bool {
	return p.DisplayName == nil && p.Email == nil && len(p.Answers) == 0 && !p.Consent
}

type CaptureInput struct {
	MediaURL  string
	MediaType string
	TraceID   *string
}

type CompletionResult struct {
	Guest          *model.Guest
	Capture        *model.Capture
	TransformJobID *int64
}

type GuestFlowService interface {
	StartSession(ctx context.Context, rawShortCode string) (*GuestSession, error)
	GetFlow(ctx context.Context, identity GuestIdentity) (*model.Guest, *FlowComposition, error)
	Advance(ctx context.Context, identity GuestIdentity, target model.FlowState, payload AdvancePayload) (*model.Guest, error)
	CompleteExperience(ctx context.Context, identity GuestIdentity, experienceID int64, capture *CaptureInput) (*CompletionResult, error)
	ListCaptures(ctx context.Context, identity GuestIdentity) ([]model.Capture, error)
	ShareCapture(ctx context.Context, identity GuestIdentity, captureID int64) (*model.Capture, string, error)
	GetSharedCapture(ctx context.Context, rawCode string) (*model.Capture, error)
}

type guestFlowService struct {
	guestStore      store.GuestStore
	eventStore      store.EventStore
	experienceStore store.ExperienceStore
	captureStore    store.CaptureStore
	tokens          GuestTokenService
	transforms      TransformService
	shareBaseURL    string
}

func NewGuestFlowService(
	guestStore store.GuestStore,
	eventStore store.EventStore,
	experienceStore store.ExperienceStore,
	captureStore store.CaptureStore,
	tokens GuestTokenService,
	transforms TransformService,
	shareBaseURL string,
) GuestFlowService {
	return &guestFlowService{
		guestStore:      guestStore,
		eventStore:      eventStore,
		experienceStore: experienceStore,
		captureStore:    captureStore,
		tokens:          tokens,
		transforms:      transforms,
		shareBaseURL:    shareBaseURL,
	}
}

func (s *guestFlowService) StartSession(ctx context.Context, rawShortCode string) (*GuestSession, error) {
	shortCode := common.NormalizeShortCode(rawShortCode)
	if !common.IsValidShortCode(shortCode) {
		return nil, ErrEventNotFound
	}

	event, err := s.eventStore.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}

	if !event.IsLive(time.Now()) {
		return nil, ErrEventNotLive
	}

	guest := &model.Guest{
		ID:                   id.New(),
		ProjectID:            event.ProjectID,
		EventID:              event.ID,
		FlowState:            model.FlowStateWelcome,
		CompletedExperiences: []int64{},
	}

	if err := s.guestStore.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("creating guest: %w", err)
	}

	token, err := s.tokens.Issue(guest)
	if err != nil {
		return nil, fmt.Errorf("issuing guest token: %w", err)
	}

	composition, err := s.composeFlow(ctx, event)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "guest session started",
		"guest_id", guest.ID,
		"event_id", event.ID,
		"short_code", shortCode,
	)

	return &GuestSession{Guest: guest, Token: token, Composition: composition}, nil
}

func (s *guestFlowService) GetFlow(ctx context.Context, identity GuestIdentity) (*model.Guest, *FlowComposition, error) {
	guest, event, err := s.loadGuestAndEvent(ctx, identity)
	if err != nil {
		return nil, nil, err
	}

	composition, err := s.composeFlow(ctx, event)
	if err != nil {
		return nil, nil, err
	}

	return guest, composition, nil
}

func (s *guestFlowService) Advance(ctx context.Context, identity GuestIdentity, target model.FlowState, payload AdvancePayload) (*model.Guest, error) {
	guest, event, err := s.loadGuestAndEvent(ctx, identity)
	if err != nil {
		return nil, err
	}

	pregateEnabled := model.EventPregateEnabled(event.PublishedConfig)
	if !guest.FlowState.CanAdvanceTo(target, pregateEnabled) {
		return nil, ErrInvalidTransition
	}

	if target == model.FlowStatePreshare && len(guest.CompletedExperiences) == 0 {
		return nil, ErrNoCompletedExperience
	}

	if !payload.empty() {
		var consentedAt *time.Time
		if payload.Consent {
			now := time.Now().UTC()
			consentedAt = &now
		}
		if _, err := s.guestStore.UpdatePregate(ctx, guest.ID, payload.DisplayName, payload.Email, payload.Answers, consentedAt); err != nil {
			return nil, fmt.Errorf("saving pregate details: %w", err)
		}
	}

	updated, err := s.guestStore.AdvanceFlow(ctx, guest.ID, guest.FlowState, target)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the compare-and-set to a concurrent advance.
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("advancing flow: %w", err)
	}

	slog.InfoContext(ctx, "guest advanced",
		"guest_id", guest.ID,
		"event_id", event.ID,
		"from", guest.FlowState,
		"to", target,
	)

	return updated, nil
}

func (s *guestFlowService) CompleteExperience(ctx context.Context, identity GuestIdentity, experienceID int64, capture *CaptureInput) (*CompletionResult, error) {
	guest, event, err := s.loadGuestAndEvent(ctx, identity)
	if err != nil {
		return nil, err
	}

	rotation := model.EventRotation(event.PublishedConfig)
	if !containsID(rotation, experienceID) {
		return nil, ErrExperienceNotInRotation
	}

	if capture != nil && !validMediaType(capture.MediaType) {
		return nil, ErrInvalidMediaType
	}

	updated, err := s.guestStore.CompleteExperience(ctx, guest.ID, experienceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("completing experience: %w", err)
	}

	result := &CompletionResult{Guest: updated}

	if capture != nil {
		saved, jobID, err := s.saveCapture(ctx, event, guest, experienceID, *capture)
		if err != nil {
			return nil, err
		}
		result.Capture = saved
		result.TransformJobID = jobID
	}

	slog.InfoContext(ctx, "experience completed",
		"guest_id", guest.ID,
		"event_id", event.ID,
		"experience_id", experienceID,
		"completed_count", len(updated.CompletedExperiences),
	)

	return result, nil
}

func (s *guestFlowService) ListCaptures(ctx context.Context, identity GuestIdentity) ([]model.Capture, error) {
	return s.captureStore.ListByGuest(ctx, identity.GuestID)
}

func (s *guestFlowService) ShareCapture(ctx context.Context, identity GuestIdentity, captureID int64) (*model.Capture, string, error) {
	capture, err := s.captureStore.MarkShared(ctx, captureID, identity.GuestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrCaptureNotFound
		}
		return nil, "", fmt.Errorf("marking capture shared: %w", err)
	}

	shareURL := common.ShareURL(s.shareBaseURL, capture.ShareCode)

	slog.InfoContext(ctx, "capture shared",
		"capture_id", captureID,
		"guest_id", identity.GuestID,
	)

	return capture, shareURL, nil
}

func (s *guestFlowService) GetSharedCapture(ctx context.Context, rawCode string) (*model.Capture, error) {
	code, err := common.ParseShareCode(rawCode)
	if err != nil {
		return nil, ErrCaptureNotFound
	}

	capture, err := s.captureStore.GetByShareCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCaptureNotFound
		}
		return nil, fmt.Errorf("getting capture: %w", err)
	}
	return capture, nil
}

func (s *guestFlowService) loadGuestAndEvent(ctx context.Context, identity GuestIdentity) (*model.Guest, *model.Event, error) {
	guest, err := s.guestStore.GetByID(ctx, identity.GuestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrGuestNotFound
		}
		return nil, nil, fmt.Errorf("getting guest: %w", err)
	}

	event, err := s.eventStore.Get(ctx, guest.EventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("getting event: %w", err)
	}

	return guest, event, nil
}

func (s *guestFlowService) composeFlow(ctx context.Context, event *model.Event) (*FlowComposition, error) {
	composition := &FlowComposition{
		EventID:   event.ID,
		EventName: event.Name,
		JoinURL:   common.EventURL(s.shareBaseURL, event.ShortCode),
		Config:    event.PublishedConfig,
		Rotation:  []ExperienceSummary{},
	}

	rotation := model.EventRotation(event.PublishedConfig)
	if len(rotation) == 0 {
		return composition, nil
	}

	experiences, err := s.experienceStore.GetManyByIDs(ctx, event.WorkspaceID, rotation)
	if err != nil {
		return nil, fmt.Errorf("loading rotation experiences: %w", err)
	}

	byID := make(map[int64]*model.Experience, len(experiences))
	for i := range experiences {
		byID[experiences[i].ID] = &experiences[i]
	}

	// Rotation order is the event's, not the store's. Entries deleted or
	// unpublished since the event was published are dropped.
	for _, expID := range rotation {
		exp, ok := byID[expID]
		if !ok || !exp.IsPublished() {
			continue
		}
		composition.Rotation = append(composition.Rotation, ExperienceSummary{
			ID:     exp.ID,
			Name:   exp.Name,
			Kind:   exp.Kind,
			Config: exp.PublishedConfig,
		})
	}

	return composition, nil
}

// The transform is a bonus on top of a capture that already exists, so
// enqueue failures are logged and never surfaced to the guest.
func (s *guestFlowService) saveCapture(ctx context.Context, event *model.Event, guest *model.Guest, experienceID int64, input CaptureInput) (*model.Capture, *int64, error) {
	capture := &model.Capture{
		ID:           id.New(),
		ProjectID:    guest.ProjectID,
		EventID:      event.ID,
		GuestID:      guest.ID,
		ExperienceID: experienceID,
		MediaURL:     input.MediaURL,
		MediaType:    input.MediaType,
		ShareCode:    common.NewShareCode(),
	}

	if err := s.captureStore.Create(ctx, capture); err != nil {
		return nil, nil, fmt.Errorf("creating capture: %w", err)
	}

	experience, err := s.experienceStore.GetByID(ctx, event.WorkspaceID, experienceID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load experience for transform",
			"error", err,
			"experience_id", experienceID,
		)
		return capture, nil, nil
	}

	presetID, ok := model.ExperiencePresetID(experience.PublishedConfig)
	if !ok {
		return capture, nil, nil
	}

	job, err := s.transforms.Enqueue(ctx, TransformParams{
		WorkspaceID: event.WorkspaceID,
		ProjectID:   event.ProjectID,
		CaptureID:   capture.ID,
		PresetID:    presetID,
		TraceID:     input.TraceID,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to enqueue transform",
			"error", err,
			"capture_id", capture.ID,
			"preset_id", presetID,
		)
		return capture, nil, nil
	}

	capture.TransformJobID = &job.ID
	return capture, &job.ID, nil
}

func containsID(ids []int64, target int64) bool {
	for _, v := range ids {
		if v == target {
			return true
		}
	}
	return false
}

func validMediaType(mediaType string) bool {
	switch mediaType {
	case "image", "video", "gif":
		return true
	}
	return false
}
