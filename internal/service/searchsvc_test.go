package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/service"
)

var _ = Describe("SearchService", func() {
	var (
		svc             service.SearchService
		mockProjects    *mockProjectStore
		mockEvents      *mockEventStore
		mockExperiences *mockExperienceStore
		mockPresets     *mockPresetStore
		mockIndex       *mockSearchIndex
		ctx             context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockProjects = &mockProjectStore{}
		mockEvents = &mockEventStore{}
		mockExperiences = &mockExperienceStore{}
		mockPresets = &mockPresetStore{}
		mockIndex = &mockSearchIndex{}
		svc = service.NewSearchService(mockProjects, mockEvents, mockExperiences, mockPresets, mockIndex)
	})

	It("answers an empty query without touching the backend", func() {
		hits, err := svc.Search(ctx, 7, "", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(hits).To(BeEmpty())
		Expect(mockIndex.searchCalls).To(BeZero())
	})

	It("degrades to no results when the backend is down", func() {
		mockIndex.searchFn = func(_ context.Context, _ int64, _ string, _ int) ([]search.Hit, error) {
			return nil, errors.New("connection refused")
		}

		hits, err := svc.Search(ctx, 7, "gala", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(hits).To(BeEmpty())
	})

	It("caps the search limit", func() {
		mockIndex.searchFn = func(_ context.Context, _ int64, _ string, limit int) ([]search.Hit, error) {
			Expect(limit).To(Equal(20))
			return []search.Hit{}, nil
		}

		_, err := svc.Search(ctx, 7, "gala", 500)
		Expect(err).NotTo(HaveOccurred())
		Expect(mockIndex.searchCalls).To(Equal(1))
	})

	It("reindexes only published content", func() {
		mockProjects.listFn = func(_ context.Context, _ int64) ([]model.Project, error) {
			return []model.Project{
				{ID: 1, Name: "Summer Tour", PublishedConfig: map[string]any{"theme": map[string]any{}}},
				{ID: 2, Name: "Scratchpad"},
			}, nil
		}
		mockEvents.listByProjectFn = func(_ context.Context, _, projectID int64) ([]model.Event, error) {
			if projectID != 1 {
				return []model.Event{}, nil
			}
			return []model.Event{
				{ID: 10, Name: "Gala Night", ShortCode: "ABC234", PublishedConfig: map[string]any{"welcome_heading": "Gala Night"}},
				{ID: 11, Name: "Rehearsal"},
			}, nil
		}
		mockExperiences.listByProjectFn = func(_ context.Context, _, projectID int64) ([]model.Experience, error) {
			if projectID != 1 {
				return []model.Experience{}, nil
			}
			return []model.Experience{
				{ID: 20, Name: "Photo Booth", PublishedConfig: map[string]any{"countdown_seconds": 3}},
			}, nil
		}
		mockPresets.listFn = func(_ context.Context, _ int64) ([]model.AIPreset, error) {
			return []model.AIPreset{
				{ID: 30, Name: "Neon Pop", PublishedConfig: map[string]any{"prompt_template": "x"}},
				{ID: 31, Name: "Draft Style"},
			}, nil
		}

		var types []string
		mockIndex.upsertFn = func(_ context.Context, doc search.Document) error {
			types = append(types, doc.Type)
			return nil
		}

		indexed, err := svc.Reindex(ctx, 7)
		Expect(err).NotTo(HaveOccurred())
		Expect(indexed).To(Equal(4))
		Expect(types).To(Equal([]string{"project", "event", "experience", "preset"}))
	})

	It("stops a reindex on the first backend failure", func() {
		mockProjects.listFn = func(_ context.Context, _ int64) ([]model.Project, error) {
			return []model.Project{
				{ID: 1, Name: "Summer Tour", PublishedConfig: map[string]any{"theme": map[string]any{}}},
				{ID: 2, Name: "Winter Tour", PublishedConfig: map[string]any{"theme": map[string]any{}}},
			}, nil
		}
		mockIndex.upsertFn = func(_ context.Context, doc search.Document) error {
			if doc.ID == "2" {
				return errors.New("collection gone")
			}
			return nil
		}

		indexed, err := svc.Reindex(ctx, 7)
		Expect(err).To(MatchError(ContainSubstring("indexing project 2")))
		Expect(indexed).To(Equal(1))
	})
})
