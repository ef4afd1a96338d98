package models

import "time"

// JobRequest is the body of an asynchronous resize request. ImageURL is
// either an http(s) URL or a path inside the storage bucket.
type JobRequest struct {
	ImageURL string        `json:"image_url" binding:"required"`
	Resize   ResizeRequest `json:"resize" binding:"required"`
}

type ProcessingJob struct {
	ID        string          `json:"id"`
	ImageURL  string          `json:"image_url"`
	Request   ResizeRequest   `json:"request"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
	Result    *ProcessedImage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
