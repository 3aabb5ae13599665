package tokenstore

import "context"

// NoopStore is the degraded mode used when the local database cannot be
// opened: every read is absent, writes vanish. The session then simply
// starts Anonymous on each run.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (*NoopStore) Save(ctx context.Context, token string) error { return nil }

func (*NoopStore) Read(ctx context.Context) string { return "" }

func (*NoopStore) Clear(ctx context.Context) error { return nil }
