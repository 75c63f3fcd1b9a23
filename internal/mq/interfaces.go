package mq

import (
	"context"
)

// ProducerInterface defines the interface for click event production
type ProducerInterface interface {
	SendClick(ctx context.Context, msg *ClickMessage) error
	Close() error
}

// ConsumerInterface defines the interface for click event consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
