package worker

import (
	"context"

	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// JobProcessor abstracts the transform pipeline for testability.
type JobProcessor interface {
	Process(ctx context.Context, job *model.TransformJob) (*model.TransformResult, error)
}
