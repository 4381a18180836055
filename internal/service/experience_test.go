package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
	"emcee.events/emcee/internal/store"
)

var _ = Describe("ExperienceService", func() {
	var (
		svc             service.ExperienceService
		mockExperiences *mockExperienceStore
		mockProjects    *mockProjectStore
		mockPresets     *mockPresetStore
		mockIndex       *mockSearchIndex
		ctx             context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockExperiences = &mockExperienceStore{}
		mockProjects = &mockProjectStore{}
		mockPresets = &mockPresetStore{}
		mockIndex = &mockSearchIndex{}
		svc = service.NewExperienceService(mockExperiences, mockProjects, mockPresets, mockIndex)
		Expect(id.Init(1)).To(Succeed())
	})

	It("rejects an unknown kind", func() {
		_, err := svc.Create(ctx, 7, 1, "Booth", model.ExperienceKind("hologram"), 10)
		Expect(err).To(MatchError(service.ErrInvalidExperienceKind))
		Expect(mockExperiences.createCalls).To(BeZero())
	})

	It("creates an experience with a kind-shaped draft", func() {
		mockProjects.getByIDFn = func(_ context.Context, _, projectID int64) (*model.Project, error) {
			return &model.Project{ID: projectID}, nil
		}
		mockExperiences.createFn = func(_ context.Context, exp *model.Experience) error {
			Expect(exp.Kind).To(Equal(model.ExperienceKindGIF))
			Expect(exp.DraftConfig).To(HaveKeyWithValue("capture_count", 4))
			return nil
		}

		exp, err := svc.Create(ctx, 7, 1, "GIF Booth", model.ExperienceKindGIF, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(exp.Status).To(Equal(model.ContentStatusDraft))
	})

	It("refuses to publish a config naming a missing preset", func() {
		mockExperiences.getByIDFn = func(_ context.Context, _, expID int64) (*model.Experience, error) {
			return &model.Experience{
				ID:          expID,
				DraftConfig: map[string]any{"preset_id": "900"},
			}, nil
		}
		mockPresets.getByIDFn = func(_ context.Context, _, presetID int64) (*model.AIPreset, error) {
			Expect(presetID).To(Equal(int64(900)))
			return nil, store.ErrNotFound
		}

		_, err := svc.Publish(ctx, 7, 1)
		Expect(err).To(MatchError(service.ErrPresetRefNotFound))
		Expect(mockExperiences.publishCalls).To(BeZero())
	})

	It("refuses to publish a config naming an unpublished preset", func() {
		mockExperiences.getByIDFn = func(_ context.Context, _, expID int64) (*model.Experience, error) {
			return &model.Experience{
				ID:          expID,
				DraftConfig: map[string]any{"preset_id": "900"},
			}, nil
		}
		mockPresets.getByIDFn = func(_ context.Context, _, _ int64) (*model.AIPreset, error) {
			return &model.AIPreset{ID: 900}, nil
		}

		_, err := svc.Publish(ctx, 7, 1)
		Expect(err).To(MatchError(service.ErrPresetRefUnpublished))
	})

	It("publishes without a preset lookup when the config names none", func() {
		mockExperiences.getByIDFn = func(_ context.Context, _, expID int64) (*model.Experience, error) {
			return &model.Experience{
				ID:          expID,
				DraftConfig: map[string]any{"countdown_seconds": 3},
			}, nil
		}
		mockExperiences.publishFn = func(_ context.Context, workspaceID, expID int64) (*model.Experience, error) {
			return &model.Experience{ID: expID, WorkspaceID: workspaceID, PublishedConfig: map[string]any{"countdown_seconds": 3}}, nil
		}

		_, err := svc.Publish(ctx, 7, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(mockPresets.getByIDCalls).To(BeZero())
	})

	It("publishes when the referenced preset is live", func() {
		mockExperiences.getByIDFn = func(_ context.Context, _, expID int64) (*model.Experience, error) {
			return &model.Experience{
				ID:          expID,
				DraftConfig: map[string]any{"preset_id": "900"},
			}, nil
		}
		mockPresets.getByIDFn = func(_ context.Context, _, _ int64) (*model.AIPreset, error) {
			return &model.AIPreset{ID: 900, PublishedConfig: map[string]any{"prompt_template": "neon {subject}"}}, nil
		}
		mockExperiences.publishFn = func(_ context.Context, workspaceID, expID int64) (*model.Experience, error) {
			return &model.Experience{ID: expID, WorkspaceID: workspaceID, PublishedConfig: map[string]any{"preset_id": "900"}}, nil
		}

		_, err := svc.Publish(ctx, 7, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(mockExperiences.publishCalls).To(Equal(1))
	})
})
