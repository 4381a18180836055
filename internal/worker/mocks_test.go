package worker_test

import (
	"context"

	"emcee.events/emcee/common/llm"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/queue"
)

type mockCaptureStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Capture, error)
}

func (m *mockCaptureStore) GetByID(ctx context.Context, id int64) (*model.Capture, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCaptureStore) GetByShareCode(ctx context.Context, shareCode string) (*model.Capture, error) {
	return nil, nil
}

func (m *mockCaptureStore) Create(ctx context.Context, capture *model.Capture) error {
	return nil
}

func (m *mockCaptureStore) ListByEvent(ctx context.Context, eventID int64) ([]model.Capture, error) {
	return []model.Capture{}, nil
}

func (m *mockCaptureStore) ListByGuest(ctx context.Context, guestID int64) ([]model.Capture, error) {
	return []model.Capture{}, nil
}

func (m *mockCaptureStore) SetTransformJob(ctx context.Context, id, jobID int64) error {
	return nil
}

func (m *mockCaptureStore) MarkShared(ctx context.Context, id, guestID int64) (*model.Capture, error) {
	return nil, nil
}

type mockPresetStore struct {
	getByIDFn func(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error)
}

func (m *mockPresetStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *mockPresetStore) Create(ctx context.Context, preset *model.AIPreset) error {
	return nil
}

func (m *mockPresetStore) List(ctx context.Context, workspaceID int64) ([]model.AIPreset, error) {
	return []model.AIPreset{}, nil
}

func (m *mockPresetStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.AIPreset, error) {
	return nil, nil
}

func (m *mockPresetStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.AIPreset, error) {
	return nil, nil
}

func (m *mockPresetStore) Publish(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error) {
	return nil, nil
}

func (m *mockPresetStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return nil
}

type mockJobStore struct {
	claimFn         func(ctx context.Context, id int64) (*model.TransformJob, error)
	markSucceededFn func(ctx context.Context, id int64, result *model.TransformResult) error
	markFailedFn    func(ctx context.Context, id int64, errMsg string) error

	claimCalls         int
	markSucceededCalls int
	markFailedCalls    int
}

func (m *mockJobStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.TransformJob, error) {
	return nil, nil
}

func (m *mockJobStore) Create(ctx context.Context, job *model.TransformJob) error {
	return nil
}

func (m *mockJobStore) Claim(ctx context.Context, id int64) (*model.TransformJob, error) {
	m.claimCalls++
	if m.claimFn != nil {
		return m.claimFn(ctx, id)
	}
	return nil, nil
}

func (m *mockJobStore) MarkSucceeded(ctx context.Context, id int64, result *model.TransformResult) error {
	m.markSucceededCalls++
	if m.markSucceededFn != nil {
		return m.markSucceededFn(ctx, id, result)
	}
	return nil
}

func (m *mockJobStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	m.markFailedCalls++
	if m.markFailedFn != nil {
		return m.markFailedFn(ctx, id, errMsg)
	}
	return nil
}

func (m *mockJobStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
	return []model.TransformJob{}, nil
}

type mockConsumer struct {
	readFn    func(ctx context.Context) ([]queue.Message, error)
	requeueFn func(ctx context.Context, msg queue.Message, errMsg string) error
	sendDLQFn func(ctx context.Context, msg queue.Message, errMsg string) error

	ackCalls     int
	requeueCalls int
	dlqCalls     int
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	return []queue.Message{}, nil
}

func (m *mockConsumer) Ack(ctx context.Context, msg queue.Message) error {
	m.ackCalls++
	return nil
}

func (m *mockConsumer) Requeue(ctx context.Context, msg queue.Message, errMsg string) error {
	m.requeueCalls++
	if m.requeueFn != nil {
		return m.requeueFn(ctx, msg, errMsg)
	}
	return nil
}

func (m *mockConsumer) SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error {
	m.dlqCalls++
	if m.sendDLQFn != nil {
		return m.sendDLQFn(ctx, msg, errMsg)
	}
	return nil
}

type mockLLM struct {
	chatFn func(ctx context.Context, req llm.Request, result any) (*llm.Response, error)

	chatCalls int
}

func (m *mockLLM) Chat(ctx context.Context, req llm.Request, result any) (*llm.Response, error) {
	m.chatCalls++
	if m.chatFn != nil {
		return m.chatFn(ctx, req, result)
	}
	return &llm.Response{}, nil
}

func (m *mockLLM) Model() string {
	return "mock-model"
}

type mockProcessor struct {
	processFn func(ctx context.Context, job *model.TransformJob) (*model.TransformResult, error)

	processCalls int
}

func (m *mockProcessor) Process(ctx context.Context, job *model.TransformJob) (*model.TransformResult, error) {
	m.processCalls++
	if m.processFn != nil {
		return m.processFn(ctx, job)
	}
	return &model.TransformResult{}, nil
}
