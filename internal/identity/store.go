package identity

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Store is the durable keyed storage behind a session: one entry per key
// holding the serialized identity. Absence of the key means "no session".
// Payloads carry no integrity check; corrupt entries are discarded by the
// session on load.
type Store interface {
	Put(ctx context.Context, key string, payload []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
