package model

import (
	"time"
)

// Link statuses
const (
	StatusDisabled = 0
	StatusActive   = 1
)

// Link represents a short link entity. ShortCode and LongURL are immutable
// once created; only Status may change afterwards.
type Link struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortCode     string     `json:"short_code" gorm:"type:varchar(30);uniqueIndex;not null"`
	LongURL       string     `json:"long_url" gorm:"type:varchar(2048);not null"`
	URLHash       string     `json:"-" gorm:"type:char(64);index;not null"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty" gorm:"index"`
	OwnerID       string     `json:"owner_id,omitempty" gorm:"type:varchar(100)"`
	IsCustomAlias bool       `json:"is_custom_alias"`
	Status        int        `json:"status" gorm:"default:1;comment:1-active,0-disabled"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// IsActive reports whether the link is active and not expired.
func (l *Link) IsActive() bool {
	if l.Status != StatusActive {
		return false
	}
	return !l.IsExpired()
}

// IsExpired reports whether the link has passed its expiry time.
func (l *Link) IsExpired() bool {
	return l.ExpiresAt != nil && time.Now().After(*l.ExpiresAt)
}

// DedupEntry maps a long URL hash to the canonical short code for that URL.
// The primary key on URLHash is the uniqueness gate that serializes racing
// creators; an entry exists for every active generated link but not for
// custom-alias links.
type DedupEntry struct {
	URLHash   string    `json:"url_hash" gorm:"type:char(64);primaryKey"`
	ShortCode string    `json:"short_code" gorm:"type:varchar(30);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for DedupEntry
func (DedupEntry) TableName() string {
	return "dedup_entries"
}

// CreateRequest represents the request to create a short link
type CreateRequest struct {
	URL         string `json:"url" binding:"required"`
	CustomAlias string `json:"custom_alias,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
	TTLDays     int    `json:"ttl_days,omitempty" binding:"omitempty,min=1,max=3650"`
}

// CreateResponse represents the response of short link creation. Created is
// false when the URL already had a canonical code.
type CreateResponse struct {
	ShortCode string     `json:"short_code"`
	ShortURL  string     `json:"short_url"`
	LongURL   string     `json:"long_url"`
	Created   bool       `json:"created"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// StatsResponse represents click statistics for a short link
type StatsResponse struct {
	ShortCode string     `json:"short_code"`
	LongURL   string     `json:"long_url"`
	Clicks    int64      `json:"clicks"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
