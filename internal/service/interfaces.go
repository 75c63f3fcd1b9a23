package service

import (
	"context"

	"tinylink/internal/model"
	"tinylink/internal/mq"
)

// ShortenerInterface defines the mapping service operations
type ShortenerInterface interface {
	Create(ctx context.Context, req *model.CreateRequest) (*model.CreateResponse, error)
	Resolve(ctx context.Context, shortCode string) (*model.Link, error)
	Deactivate(ctx context.Context, shortCode string) error
	Stats(ctx context.Context, shortCode string) (*model.StatsResponse, error)
}

// BlocklistInterface answers whether a URL may be shortened. Implementations
// are read-only snapshots refreshed out-of-band.
type BlocklistInterface interface {
	IsBlocked(rawURL, host string) bool
}

// ClickRecorderInterface accepts click events without ever blocking the
// caller
type ClickRecorderInterface interface {
	Record(click *mq.ClickMessage)
}
