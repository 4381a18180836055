package worker_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/common/llm"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/store"
	"emcee.events/emcee/internal/worker"
)

var _ = Describe("Processor", func() {
	var (
		processor    *worker.Processor
		mockCaptures *mockCaptureStore
		mockPresets  *mockPresetStore
		llmClient    *mockLLM
		job          *model.TransformJob
		ctx          context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockCaptures = &mockCaptureStore{}
		mockPresets = &mockPresetStore{}
		llmClient = &mockLLM{}
		processor = worker.NewProcessor(llmClient, mockCaptures, mockPresets)
		job = &model.TransformJob{ID: 1, WorkspaceID: 7, ProjectID: 3, CaptureID: 55, PresetID: 900}
	})

	It("fails unprocessable when the capture is gone", func() {
		mockCaptures.getByIDFn = func(_ context.Context, _ int64) (*model.Capture, error) {
			return nil, store.ErrNotFound
		}

		_, err := processor.Process(ctx, job)
		Expect(err).To(MatchError(worker.ErrJobUnprocessable))
		Expect(llmClient.chatCalls).To(BeZero())
	})

	It("fails unprocessable when the preset lost its published config", func() {
		mockCaptures.getByIDFn = func(_ context.Context, captureID int64) (*model.Capture, error) {
			return &model.Capture{ID: captureID, MediaType: "image", MediaURL: "https://cdn.example/raw.jpg"}, nil
		}
		mockPresets.getByIDFn = func(_ context.Context, _, presetID int64) (*model.AIPreset, error) {
			return &model.AIPreset{ID: presetID}, nil
		}

		_, err := processor.Process(ctx, job)
		Expect(err).To(MatchError(worker.ErrJobUnprocessable))
		Expect(llmClient.chatCalls).To(BeZero())
	})

	It("renders the preset into the prompt and normalizes the result", func() {
		mockCaptures.getByIDFn = func(_ context.Context, captureID int64) (*model.Capture, error) {
			return &model.Capture{ID: captureID, MediaType: "image", MediaURL: "https://cdn.example/raw.jpg"}, nil
		}
		mockPresets.getByIDFn = func(_ context.Context, workspaceID, presetID int64) (*model.AIPreset, error) {
			Expect(workspaceID).To(Equal(int64(7)))
			return &model.AIPreset{
				ID: presetID,
				PublishedConfig: map[string]any{
					"prompt_template": "Retro neon portrait",
					"style_tags":      []any{"neon", "retro"},
					"strength":        0.75,
				},
			}, nil
		}
		llmClient.chatFn = func(_ context.Context, req llm.Request, result any) (*llm.Response, error) {
			Expect(req.UserPrompt).To(ContainSubstring("Retro neon portrait"))
			Expect(req.UserPrompt).To(ContainSubstring("neon, retro"))
			Expect(req.UserPrompt).To(ContainSubstring("https://cdn.example/raw.jpg"))
			Expect(req.Schema).NotTo(BeNil())

			out := result.(*model.TransformResult)
			out.Caption = "  A neon night to remember  "
			out.AltText = "Guest under pink neon light"
			out.Tags = []string{" Neon ", "RETRO", "", "party", "lights", "glow", "pink", "extra"}
			return &llm.Response{PromptTokens: 120, CompletionTokens: 40}, nil
		}

		result, err := processor.Process(ctx, job)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Caption).To(Equal("A neon night to remember"))
		Expect(result.Tags).To(Equal([]string{"neon", "retro", "party", "lights", "glow", "pink"}))
	})

	It("passes the model error through for the retry policy", func() {
		mockCaptures.getByIDFn = func(_ context.Context, captureID int64) (*model.Capture, error) {
			return &model.Capture{ID: captureID, MediaType: "image"}, nil
		}
		mockPresets.getByIDFn = func(_ context.Context, _, presetID int64) (*model.AIPreset, error) {
			return &model.AIPreset{ID: presetID, PublishedConfig: map[string]any{"prompt_template": "x"}}, nil
		}
		llmClient.chatFn = func(_ context.Context, _ llm.Request, _ any) (*llm.Response, error) {
			return nil, context.DeadlineExceeded
		}

		_, err := processor.Process(ctx, job)
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(err).NotTo(MatchError(worker.ErrJobUnprocessable))
	})
})
