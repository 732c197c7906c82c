package domain

import (
	"encoding/json"
	"time"
)

type SystemSetting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ExtensionRelease struct {
	Version     string    `json:"version"`
	Description string    `json:"description"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
