package ports

import "context"

// EventPublisher emits domain events to the platform bus. The contract is
// adapter-neutral so application code stays independent of broker specifics.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
