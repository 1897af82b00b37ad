// Package metadata is the console's small key/value store. It keeps the
// session (token, username, server) between runs.
package metadata

import "context"

type Repository interface {
	// Get reports ok=false when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all pairs atomically.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
