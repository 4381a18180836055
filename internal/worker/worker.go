package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"emcee.events/emcee/common/llm"
	"emcee.events/emcee/common/logger"
	"emcee.events/emcee/internal/queue"
	"emcee.events/emcee/internal/store"
)

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer  Consumer
	jobs      store.TransformJobStore
	processor JobProcessor
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, jobs store.TransformJobStore, processor JobProcessor, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		jobs:      jobs,
		processor: processor,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"job_id", msg.JobID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"job_id", msg.JobID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// Exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		JobID:       &msg.JobID,
		MessageID:   &msg.ID,
		WorkspaceID: &msg.WorkspaceID,
	})

	slog.InfoContext(ctx, "processing message", "attempt", msg.Attempt)

	job, err := w.jobs.Claim(ctx, msg.JobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Job already finished or was deleted; a redelivered message
			// for a settled job is expected after crashes.
			slog.InfoContext(ctx, "job not claimable, skipping")
			w.ack(ctx, msg)
			return nil
		}
		return fmt.Errorf("claiming job: %w", err)
	}

	result, err := w.processor.Process(ctx, job)
	if err != nil {
		return err
	}

	if err := w.jobs.MarkSucceeded(ctx, job.ID, result); err != nil {
		return fmt.Errorf("marking job succeeded: %w", err)
	}

	slog.InfoContext(ctx, "transform job succeeded",
		"capture_id", job.CaptureID,
		"attempt", msg.Attempt)

	w.ack(ctx, msg)
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	unprocessable := errors.Is(err, ErrJobUnprocessable)
	if !unprocessable && llm.IsRetryable(ctx, err) && msg.Attempt < w.cfg.MaxAttempts {
		slog.WarnContext(ctx, "requeuing failed message",
			"message_id", msg.ID,
			"job_id", msg.JobID,
			"attempt", msg.Attempt)
		if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
			slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
		}
		return
	}

	slog.ErrorContext(ctx, "giving up on transform job, sending to DLQ",
		"message_id", msg.ID,
		"job_id", msg.JobID,
		"attempts", msg.Attempt,
		"unprocessable", unprocessable)

	if markErr := w.jobs.MarkFailed(ctx, msg.JobID, err.Error()); markErr != nil {
		slog.ErrorContext(ctx, "failed to mark job failed", "error", markErr)
	}
	if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
		slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
	}
}

func (w *Worker) ack(ctx context.Context, msg queue.Message) {
	if err := w.consumer.Ack(ctx, msg); err != nil {
		// The message will be reclaimed, and the claim CAS makes a second
		// delivery harmless.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"message_id", msg.ID)
	}
}
