package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/models"
)

// PublishJob enqueues job as a persistent message. The target size travels
// in the headers so consumers can route or reject without decoding the body.
func (q *QueueService) PublishJob(ctx context.Context, job *models.ProcessingJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	jobBytes, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = q.channel.Publish(
		"",          // exchange
		q.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    job.ID,
			Type:         "resize",
			Body:         jobBytes,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Headers: amqp.Table{
				"target_width":  int32(job.Request.Width),
				"target_height": int32(job.Request.Height),
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish job %s: %w", job.ID, err)
	}

	q.logger.Info("Job published to queue",
		zap.String("job_id", job.ID),
		zap.Int("width", job.Request.Width),
		zap.Int("height", job.Request.Height))
	return nil
}
