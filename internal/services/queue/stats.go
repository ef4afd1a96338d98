package queue

import "fmt"

// GetQueueStats reports the broker's view of the queue together with the
// job outcomes counted by this process's workers.
func (q *QueueService) GetQueueStats() (map[string]interface{}, error) {
	stats := q.jobStats()

	queueInfo, err := q.channel.QueueInspect(q.queueName)
	if err != nil {
		return stats, fmt.Errorf("failed to inspect queue %s: %w", q.queueName, err)
	}

	stats["pending"] = queueInfo.Messages
	stats["consumers"] = queueInfo.Consumers
	return stats, nil
}

func (q *QueueService) jobStats() map[string]interface{} {
	return map[string]interface{}{
		"name":       q.queueName,
		"completed":  q.completed.Load(),
		"failed":     q.failed.Load(),
		"cache_hits": q.cacheHits.Load(),
	}
}

// HealthCheck reports whether the broker connection and channel are usable.
func (q *QueueService) HealthCheck() string {
	switch {
	case q.conn == nil || q.conn.IsClosed():
		return "unhealthy: connection closed"
	case q.channel == nil:
		return "unhealthy: channel not available"
	default:
		return "healthy"
	}
}
