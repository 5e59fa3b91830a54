package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores the response of an already processed write so that a
// retried intake submission does not create a second lead
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex:idx_idempotency_key_client;size:255;not null"`
	ClientID     string    `gorm:"uniqueIndex:idx_idempotency_key_client;size:255;not null"` // token subject or client IP
	Endpoint     string    `gorm:"size:255;not null"`                                        // e.g. "POST /api/v1/leads"
	ResponseCode int       `gorm:"not null"`                                                 // 0 while the first request is still running
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// IsPending reports whether the request holding the key has not finished yet
func (i *IdempotencyKey) IsPending() bool {
	return i.ResponseCode == 0
}
