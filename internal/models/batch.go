package models

import (
	"bytes"
	"time"
)

type BatchImage struct {
	Buffer   *bytes.Buffer
	Format   string
	FileSize int64
	Error    string
}

type ImageResponse struct {
	Filename    string    `json:"filename"`
	URL         string    `json:"url,omitempty"`
	FileSize    int64     `json:"file_size,omitempty"`
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	Error       string    `json:"error,omitempty"`
}

type BatchResponse struct {
	Size   ResizeSize      `json:"size"`
	Images []ImageResponse `json:"images"`
	Failed int             `json:"failed"`
}
