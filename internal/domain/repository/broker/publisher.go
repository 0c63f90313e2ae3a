package broker

import "context"

// Publisher announces newly created photos to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, photoID string) error
}
