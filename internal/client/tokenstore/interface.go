// Package tokenstore persists the bearer token across runs of the CLI.
//
// Exactly one value is stored, under common.TokenStorageKey. The store keeps
// no other session state; the profile is always re-fetched from the server.
package tokenstore

import "context"

// Store is the durable home of the raw bearer token.
//
// Contract:
//   - Save overwrites any existing value. The token is not validated here.
//   - Read returns the persisted token, or "" when none is stored. It never
//     fails in a way callers must handle: an unavailable store reads as
//     absent, which callers treat as "logged out".
//   - Clear removes the value and is a no-op when nothing is stored.
type Store interface {
	Save(ctx context.Context, token string) error
	Read(ctx context.Context) string
	Clear(ctx context.Context) error
}
