package queue

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/services/processor"
)

// Store is the storage the workers need: result cache, source download,
// upload of resized images and job records.
type Store interface {
	GetFromCache(ctx context.Context, cacheKey string) ([]byte, error)
	SetCache(ctx context.Context, cacheKey string, data []byte) error
	Download(ctx context.Context, path string) ([]byte, error)
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
	SaveJob(ctx context.Context, job *models.ProcessingJob) error
}

type QueueService struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	logger      *zap.Logger
	queueName   string
	maxFileSize int64
	processor   *processor.ImageProcessor
	storage     Store

	completed atomic.Int64
	failed    atomic.Int64
	cacheHits atomic.Int64
}

func NewQueueService(
	rabbitmqURL string,
	queueName string,
	maxFileSize int64,
	processor *processor.ImageProcessor,
	storage Store,
	logger *zap.Logger,
) (*QueueService, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare queue
	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	// One unacked job per consumer.
	if err := channel.Qos(1, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	return &QueueService{
		conn:        conn,
		channel:     channel,
		logger:      logger,
		queueName:   queueName,
		maxFileSize: maxFileSize,
		processor:   processor,
		storage:     storage,
	}, nil
}

// Close closes the queue connection
func (q *QueueService) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}
