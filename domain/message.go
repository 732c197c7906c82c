// Package domain contains core concepts of the traffic exchange.
// This file defines community chat messages.
// Messages are immutable once stored.
package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxMessageLength   = 500
	DefaultMessageLoad = 50
	MaxMessageLoad     = 100
)

// Message represents an immutable chat event.
type Message struct {
	ID          uuid.UUID `json:"id"` // unique identifier
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
