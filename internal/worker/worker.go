// Package worker implements background task handlers for audit record processing.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"convsvc/internal/service"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewRecordConversionHandler returns a function to handle audit record tasks.
func NewRecordConversionHandler(svc service.ConversionServiceInterface, logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload service.RecordConversionPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			// A malformed payload can never succeed; drop it instead of retrying.
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return nil
		}

		if err := svc.RecordConversion(ctx, payload); err != nil {
			logger.Errorw("Task processing failed", "id", payload.ID, "error", err)
			return err
		}

		logger.Infow("Conversion recorded", "id", payload.ID, "pair", payload.From+"/"+payload.To)
		return nil
	}
}

// AsynqEnqueuer enqueues audit record tasks with configured retry and timeout.
type AsynqEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

var _ service.TaskEnqueuer = (*AsynqEnqueuer)(nil)

// NewAsynqEnqueuer creates a new AsynqEnqueuer with the given client, retry limit, and task timeout.
func NewAsynqEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

// EnqueueRecordTask enqueues one audit record task.
func (e *AsynqEnqueuer) EnqueueRecordTask(ctx context.Context, payload service.RecordConversionPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(service.TaskTypeRecordConversion, data,
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)

	_, err = e.client.EnqueueContext(ctx, task)
	return err
}
