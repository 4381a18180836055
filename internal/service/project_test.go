package service_test

import (
	"context"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/service"
)

var _ = Describe("ProjectService", func() {
	var (
		svc          service.ProjectService
		mockProjects *mockProjectStore
		mockIndex    *mockSearchIndex
		ctx          context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockProjects = &mockProjectStore{}
		mockIndex = &mockSearchIndex{}
		svc = service.NewProjectService(mockProjects, mockIndex)
		Expect(id.Init(1)).To(Succeed())
	})

	It("creates a project with a seeded draft", func() {
		mockProjects.createFn = func(_ context.Context, p *model.Project) error {
			Expect(p.ID).NotTo(BeZero())
			Expect(p.WorkspaceID).To(Equal(int64(7)))
			Expect(p.Status).To(Equal(model.ContentStatusDraft))
			Expect(p.DraftVersion).To(Equal(int64(1)))
			Expect(p.DraftConfig).NotTo(BeEmpty())
			Expect(p.CreatedBy).To(Equal(int64(10)))
			return nil
		}

		project, err := svc.Create(ctx, 7, "Summer Gala", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(project.Name).To(Equal("Summer Gala"))
		Expect(project.IsPublished()).To(BeFalse())
	})

	It("refuses to publish an empty draft", func() {
		mockProjects.getByIDFn = func(_ context.Context, _, projectID int64) (*model.Project, error) {
			return &model.Project{ID: projectID, DraftConfig: map[string]any{}}, nil
		}

		_, err := svc.Publish(ctx, 7, 1)
		Expect(err).To(MatchError(service.ErrNoDraft))
		Expect(mockProjects.publishCalls).To(BeZero())
	})

	It("publishes and indexes the project", func() {
		now := time.Now().UTC()
		mockProjects.getByIDFn = func(_ context.Context, _, projectID int64) (*model.Project, error) {
			return &model.Project{ID: projectID, DraftConfig: map[string]any{"theme": "dark"}}, nil
		}
		mockProjects.publishFn = func(_ context.Context, workspaceID, projectID int64) (*model.Project, error) {
			return &model.Project{
				ID:               projectID,
				WorkspaceID:      workspaceID,
				Name:             "Summer Gala",
				PublishedConfig:  map[string]any{"theme": "dark"},
				PublishedVersion: 1,
				PublishedAt:      timePtr(now),
			}, nil
		}
		mockIndex.upsertFn = func(_ context.Context, doc search.Document) error {
			Expect(doc.Type).To(Equal("project"))
			Expect(doc.ID).To(Equal(strconv.FormatInt(1, 10)))
			Expect(doc.PublishedAt).To(Equal(now.Unix()))
			return nil
		}

		published, err := svc.Publish(ctx, 7, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(published.PublishedVersion).To(Equal(int64(1)))
		Expect(mockIndex.upsertCalls).To(Equal(1))
	})

	It("keeps publishing when the index write fails", func() {
		mockProjects.getByIDFn = func(_ context.Context, _, projectID int64) (*model.Project, error) {
			return &model.Project{ID: projectID, DraftConfig: map[string]any{"theme": "dark"}}, nil
		}
		mockProjects.publishFn = func(_ context.Context, workspaceID, projectID int64) (*model.Project, error) {
			return &model.Project{ID: projectID, WorkspaceID: workspaceID, PublishedConfig: map[string]any{"theme": "dark"}}, nil
		}
		mockIndex.upsertFn = func(_ context.Context, _ search.Document) error {
			return context.DeadlineExceeded
		}

		_, err := svc.Publish(ctx, 7, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	It("names a duplicate past existing copies", func() {
		src := &model.Project{
			ID:              1,
			WorkspaceID:     7,
			Name:            "Gala",
			DraftConfig:     map[string]any{"theme": map[string]any{"primary_color": "#fff"}},
			PublishedConfig: map[string]any{"theme": map[string]any{"primary_color": "#000"}},
		}
		mockProjects.getByIDFn = func(_ context.Context, _, projectID int64) (*model.Project, error) {
			Expect(projectID).To(Equal(int64(1)))
			return src, nil
		}
		mockProjects.listFn = func(_ context.Context, _ int64) ([]model.Project, error) {
			return []model.Project{{Name: "Gala"}, {Name: "Gala (copy)"}}, nil
		}
		mockProjects.createFn = func(_ context.Context, dup *model.Project) error {
			Expect(dup.Name).To(Equal("Gala (copy 2)"))
			Expect(dup.ID).NotTo(Equal(src.ID))
			Expect(dup.Status).To(Equal(model.ContentStatusDraft))
			Expect(dup.PublishedConfig).To(BeEmpty())
			Expect(dup.DraftConfig).To(Equal(src.DraftConfig))
			return nil
		}

		dup, err := svc.Duplicate(ctx, 7, 1, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(dup.Name).To(Equal("Gala (copy 2)"))
		Expect(mockProjects.createCalls).To(Equal(1))
	})

	It("duplicates the draft config by value", func() {
		src := &model.Project{
			ID:          1,
			Name:        "Gala",
			DraftConfig: map[string]any{"theme": map[string]any{"primary_color": "#fff"}},
		}
		mockProjects.getByIDFn = func(_ context.Context, _, _ int64) (*model.Project, error) {
			return src, nil
		}
		mockProjects.listFn = func(_ context.Context, _ int64) ([]model.Project, error) {
			return []model.Project{}, nil
		}

		dup, err := svc.Duplicate(ctx, 7, 1, 10)
		Expect(err).NotTo(HaveOccurred())

		dup.DraftConfig["theme"].(map[string]any)["primary_color"] = "#123"
		Expect(src.DraftConfig["theme"].(map[string]any)["primary_color"]).To(Equal("#fff"))
	})

	It("rejects an empty draft patch", func() {
		_, err := svc.UpdateDraft(ctx, 7, 1, map[string]any{})
		Expect(err).To(MatchError(service.ErrEmptyPatch))
	})

	It("removes a deleted project from the index", func() {
		mockIndex.deleteFn = func(_ context.Context, docID string) error {
			Expect(docID).To(Equal("1"))
			return nil
		}

		Expect(svc.Delete(ctx, 7, 1)).To(Succeed())
		Expect(mockIndex.deleteCalls).To(Equal(1))
	})
})
