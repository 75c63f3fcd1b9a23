package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLink_TableName(t *testing.T) {
	l := Link{}
	assert.Equal(t, "links", l.TableName())
}

func TestDedupEntry_TableName(t *testing.T) {
	d := DedupEntry{}
	assert.Equal(t, "dedup_entries", d.TableName())
}

func TestLink_IsActive(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		status    int
		expiresAt *time.Time
		expected  bool
	}{
		{
			name:      "active without expiration",
			status:    StatusActive,
			expiresAt: nil,
			expected:  true,
		},
		{
			name:      "active with future expiration",
			status:    StatusActive,
			expiresAt: &future,
			expected:  true,
		},
		{
			name:      "disabled status",
			status:    StatusDisabled,
			expiresAt: nil,
			expected:  false,
		},
		{
			name:      "expired",
			status:    StatusActive,
			expiresAt: &past,
			expected:  false,
		},
		{
			name:      "disabled and expired",
			status:    StatusDisabled,
			expiresAt: &past,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Link{
				Status:    tt.status,
				ExpiresAt: tt.expiresAt,
			}
			assert.Equal(t, tt.expected, l.IsActive())
		})
	}
}

func TestLink_IsExpired_Boundary(t *testing.T) {
	justPast := time.Now().Add(-time.Second)
	justFuture := time.Now().Add(time.Second)

	expired := Link{Status: StatusActive, ExpiresAt: &justPast}
	assert.True(t, expired.IsExpired())
	assert.False(t, expired.IsActive())

	live := Link{Status: StatusActive, ExpiresAt: &justFuture}
	assert.False(t, live.IsExpired())
	assert.True(t, live.IsActive())
}
