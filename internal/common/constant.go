// Package common contains shared constants and sentinel errors used across
// the LibriVault client.
package common

// TokenStorageKey is the key under which the raw bearer token is persisted
// in the local store. Nothing else is persisted about a session.
const TokenStorageKey = "librivault_token"

// AuthHeaderName and AuthScheme describe how the credential travels on
// outbound requests: "Authorization: Bearer <token>".
const (
	AuthHeaderName = "Authorization"
	AuthScheme     = "Bearer"
)
