package state

import "context"

// Store persists the serialized snapshot under a namespace key. There is no
// schema migration: a key bump starts sessions from defaults.
type Store interface {
	Save(ctx context.Context, key string, snapshot []byte) error
	// Load returns (nil, nil) when no snapshot exists under the key.
	Load(ctx context.Context, key string) ([]byte, error)
	Migrate(ctx context.Context) error
	Close() error
}
